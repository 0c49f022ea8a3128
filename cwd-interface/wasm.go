package cwdinterface

import "encoding/json"

// WasmMsg is the wasm message a DAO dispatches to instantiate one of its
// modules.
type WasmMsg struct {
	Instantiate *Instantiate `json:"instantiate,omitempty"`
}

type Instantiate struct {
	Admin  *string `json:"admin"`
	CodeID int64   `json:"code_id"`
	Msg    string  `json:"msg"`
	Funds  []Coin  `json:"funds"`
	Label  string  `json:"label"`
}

func (r *WasmMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// IntoWasmMsg builds the instantiate message for the module. An instantiator
// admin resolves to contractAddress, the address of the contract doing the
// instantiation.
func (info ModuleInstantiateInfo) IntoWasmMsg(contractAddress string) WasmMsg {
	var admin *string
	if info.Admin != nil {
		switch {
		case info.Admin.Address != nil:
			addr := info.Admin.Address.Addr
			admin = &addr
		case info.Admin.Instantiator != nil:
			addr := contractAddress
			admin = &addr
		}
	}
	return WasmMsg{
		Instantiate: &Instantiate{
			Admin:  admin,
			CodeID: info.CodeID,
			Msg:    info.Msg,
			Funds:  []Coin{},
			Label:  info.Label,
		},
	}
}
