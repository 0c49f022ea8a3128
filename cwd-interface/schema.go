// Package cwdinterface holds the response and instantiate types shared by
// every DAO module, in the JSON shape the contracts exchange them.
package cwdinterface

import "encoding/json"

func UnmarshalInfoResponse(data []byte) (InfoResponse, error) {
	var r InfoResponse
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *InfoResponse) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func UnmarshalVotingPowerAtHeightResponse(data []byte) (VotingPowerAtHeightResponse, error) {
	var r VotingPowerAtHeightResponse
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *VotingPowerAtHeightResponse) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func UnmarshalTotalPowerAtHeightResponse(data []byte) (TotalPowerAtHeightResponse, error) {
	var r TotalPowerAtHeightResponse
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *TotalPowerAtHeightResponse) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func UnmarshalHooksResponse(data []byte) (HooksResponse, error) {
	var r HooksResponse
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *HooksResponse) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func UnmarshalModuleInstantiateInfo(data []byte) (ModuleInstantiateInfo, error) {
	var r ModuleInstantiateInfo
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *ModuleInstantiateInfo) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

type InfoResponse struct {
	Info ContractVersion `json:"info"`
}

type ContractVersion struct {
	// contract is the crate name of the implementing contract, eg. `crate:cw20-base` we will
	// use other prefixes for other languages, and their standard global namespacing
	Contract string `json:"contract"`
	// version is any string that this implementation knows. It may be simple counter "1",
	// "2". or semantic version on release tags "v0.7.0", or some custom feature flag list. the
	// only code that needs to understand the version parsing is code that knows how to migrate
	// from the given contract (and is tied to it's implementation somehow)
	Version string `json:"version"`
}

type VotingPowerAtHeightResponse struct {
	Height int64  `json:"height"`
	Power  string `json:"power"`
}

type TotalPowerAtHeightResponse struct {
	Height int64  `json:"height"`
	Power  string `json:"power"`
}

type IsActiveResponse bool

type HooksResponse struct {
	Hooks []string `json:"hooks"`
}

// Information needed to instantiate a module.
type ModuleInstantiateInfo struct {
	// CosmWasm level admin of the instantiated contract. See:
	// <https://docs.cosmwasm.com/docs/1.0/smart-contracts/migration>
	Admin *Admin `json:"admin"`
	// Code ID of the contract to be instantiated.
	CodeID int64 `json:"code_id"`
	// Label for the instantiated contract.
	Label string `json:"label"`
	// Instantiate message to be used to create the contract.
	Msg string `json:"msg"`
}

// Information about the CosmWasm level admin of a contract. Used in conjunction with
// `ModuleInstantiateInfo` to instantiate modules.
//
// Set the admin to a specified address.
//
// Set the admin to the address that instantiates the contract. This is useful for DAOs that
// instantiate this contract as part of their creation process and would like to set
// themselces as the admin (as in this case the address of the instantiating contract is not
// known at message execution time).
type Admin struct {
	Address      *Address      `json:"address,omitempty"`
	Instantiator *Instantiator `json:"instantiator,omitempty"`
}

type Address struct {
	Addr string `json:"addr"`
}

type Instantiator struct {
}

type Coin struct {
	Amount string `json:"amount"`
	Denom  string `json:"denom"`
}
