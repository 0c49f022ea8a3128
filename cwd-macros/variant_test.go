package cwdmacros

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagName(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{"Dao", "dao"},
		{"TotalPowerAtHeight", "total_power_at_height"},
		{"Cw20Receive", "cw20_receive"},
		{"UpdateCw20List", "update_cw20_list"},
		{"ReceiveNft721", "receive_nft721"},
		{"Cw721Receive", "cw721_receive"},
		{"V2", "v2"},
		{"IBCTransfer", "i_b_c_transfer"},
		{"GetNFTInfo", "get_n_f_t_info"},
		{"already_snake", "already_snake"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := VariantSpec{Name: tc.name}
			assert.Equal(t, tc.expected, v.TagName())
			assert.Equal(t, tc.expected, SnakeCase(tc.name))
		})
	}
}
