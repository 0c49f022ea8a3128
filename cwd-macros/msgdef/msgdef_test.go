package msgdef

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	cwdmacros "github.com/elitexpro/dao-dao-contracts/cwd-macros"
)

const cw4YAML = `
contract: cwd-voting-cw4
enums:
  - name: ExecuteMsg
    variants:
      - name: MemberChangedHook
        fields:
          - name: diffs
            type: Vec<cw4::MemberDiff>
  - name: QueryMsg
    interfaces: [voting-module-query]
    variants:
      - name: GroupContract
        returns: Addr
`

const stakedTOML = `
contract = "cwd-voting-native-staked"

[[enums]]
name = "QueryMsg"
interfaces = ["staking_query", "active_query"]
limit = 8

[[enums.variants]]
name = "GetConfig"
returns = "Config"

[[enums]]
name = "ExecuteMsg"
interfaces = ["staking_execute"]

[[enums.variants]]
name = "UpdateConfig"
doc = "Only callable by the DAO."
fields = [
  { name = "owner", type = "Option<String>" },
  { name = "duration", type = "Option<Duration>" },
]

[[enums.variants]]
name = "Sudo"
payload = "SudoMsg"
`

func TestParseYAML(t *testing.T) {
	f, err := Parse([]byte(cw4YAML), YAML)
	require.NoError(t, err)
	assert.Equal(t, "cwd-voting-cw4", f.Contract)

	defs, err := f.Definitions()
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, "ExecuteMsg", defs[0].Name)
	assert.Equal(t, []cwdmacros.Field{{Name: "diffs", Type: "Vec<cw4::MemberDiff>"}}, defs[0].Variants[0].Fields)
	assert.Equal(t, cwdmacros.PayloadNamed, defs[0].Variants[0].Kind)

	assert.Equal(t, []cwdmacros.InterfaceKey{"voting-module-query"}, defs[1].Interfaces)

	out, err := cwdmacros.AugmentAll(defs)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"GroupContract", "VotingPowerAtHeight", "TotalPowerAtHeight", "Dao", "Info"},
		out[1].VariantNames(),
	)
}

func TestParseTOML(t *testing.T) {
	f, err := Parse([]byte(stakedTOML), TOML)
	require.NoError(t, err)

	defs, err := f.Definitions()
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, 8, defs[0].VariantLimit)
	assert.Equal(t, []cwdmacros.InterfaceKey{cwdmacros.StakingQuery, cwdmacros.ActiveQuery}, defs[0].Interfaces)

	sudo := defs[1].Variants[1]
	assert.Equal(t, cwdmacros.PayloadTuple, sudo.Kind)
	assert.Equal(t, []cwdmacros.Field{{Type: "SudoMsg"}}, sudo.Fields)

	out, err := cwdmacros.AugmentAll(defs)
	require.NoError(t, err)
	assert.Equal(t, []string{"GetConfig", "StakedBalanceAtHeight", "TotalStakedAtHeight", "Claims", "ListStakers", "IsActive"},
		out[0].VariantNames())
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("contract: x\nenumz: []\n"), YAML)
	assert.Error(t, err)

	_, err = Parse([]byte("contract = \"x\"\nenumz = \"y\"\n"), TOML)
	assert.ErrorIs(t, err, ErrInvalidDecl)

	_, err = Parse([]byte("{}"), Format("json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDefinitionsValidation(t *testing.T) {
	testCases := []struct {
		name string
		decl EnumDecl
	}{
		{"bad enum name", EnumDecl{Name: "Query Msg"}},
		{"negative limit", EnumDecl{Name: "QueryMsg", Limit: -1}},
		{"bad variant name", EnumDecl{Name: "QueryMsg", Variants: []VariantDecl{{Name: "9lives"}}}},
		{"unknown kind", EnumDecl{Name: "QueryMsg", Variants: []VariantDecl{{Name: "A", Kind: "record"}}}},
		{"unit with fields", EnumDecl{Name: "QueryMsg", Variants: []VariantDecl{
			{Name: "A", Kind: "unit", Fields: []cwdmacros.Field{{Name: "a", Type: "u8"}}},
		}}},
		{"tuple without payload", EnumDecl{Name: "QueryMsg", Variants: []VariantDecl{{Name: "A", Kind: "tuple"}}}},
		{"named with payload", EnumDecl{Name: "QueryMsg", Variants: []VariantDecl{{Name: "A", Kind: "named", Payload: "X"}}}},
		{"field without type", EnumDecl{Name: "QueryMsg", Variants: []VariantDecl{
			{Name: "A", Fields: []cwdmacros.Field{{Name: "a"}}},
		}}},
		{"duplicate field", EnumDecl{Name: "QueryMsg", Variants: []VariantDecl{
			{Name: "A", Fields: []cwdmacros.Field{{Name: "a", Type: "u8"}, {Name: "a", Type: "u16"}}},
		}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := &File{Enums: []EnumDecl{tc.decl}}
			_, err := f.Definitions()
			assert.ErrorIs(t, err, ErrInvalidDecl)
		})
	}
}

func TestDefinitionsKeepUnknownInterfacesForTheEngine(t *testing.T) {
	f := &File{Enums: []EnumDecl{{Name: "QueryMsg", Interfaces: []string{"governance_query"}}}}
	defs, err := f.Definitions()
	require.NoError(t, err)

	_, err = cwdmacros.AugmentAll(defs)
	assert.ErrorIs(t, err, cwdmacros.ErrUnknownInterface)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "msg.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(cw4YAML), 0o644))
	tomlPath := filepath.Join(dir, "msg.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(stakedTOML), 0o644))

	f, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "cwd-voting-cw4", f.Contract)

	f, err = Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "cwd-voting-native-staked", f.Contract)

	_, err = Load(filepath.Join(dir, "msg.json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRender(t *testing.T) {
	out, err := cwdmacros.Augment(cwdmacros.EnumDefinition{
		Name:       "ExecuteMsg",
		Variants:   []cwdmacros.VariantSpec{{Name: "Receive", Kind: cwdmacros.PayloadTuple, Fields: []cwdmacros.Field{{Type: "Cw20ReceiveMsg"}}}},
		Interfaces: []cwdmacros.InterfaceKey{cwdmacros.StakeChangedHook},
	})
	require.NoError(t, err)

	data, err := Render("cwd-staking", []cwdmacros.AugmentedEnumDefinition{out})
	require.NoError(t, err)

	var rendered renderedFile
	require.NoError(t, yaml.Unmarshal(data, &rendered))
	require.Len(t, rendered.Enums, 1)
	e := rendered.Enums[0]
	assert.Equal(t, []string{"stake_changed_hook"}, e.Interfaces)
	require.Len(t, e.Variants, 2)
	assert.Equal(t, renderedVariant{Name: "Receive", Tag: "receive", Kind: "tuple", Payload: "Cw20ReceiveMsg"}, e.Variants[0])
	assert.Equal(t, "stake_change_hook", e.Variants[1].Tag)
	assert.Equal(t, "cwd_hooks::stake::StakeChangedHookMsg", e.Variants[1].Payload)
}
