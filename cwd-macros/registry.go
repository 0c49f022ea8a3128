package cwdmacros

import (
	"sort"
	"strings"
)

// InterfaceKey names one shared message interface, e.g. voting_module_query.
type InterfaceKey string

const (
	VotingModuleQuery     InterfaceKey = "voting_module_query"
	TokenQuery            InterfaceKey = "token_query"
	ActiveQuery           InterfaceKey = "active_query"
	ProposalModuleQuery   InterfaceKey = "proposal_module_query"
	ProposalModuleExecute InterfaceKey = "proposal_module_execute"
	PreProposeQuery       InterfaceKey = "pre_propose_query"
	PreProposeExecute     InterfaceKey = "pre_propose_execute"
	ProposalHook          InterfaceKey = "proposal_hook"
	VoteHook              InterfaceKey = "vote_hook"
	StakeChangedHook      InterfaceKey = "stake_changed_hook"
	StakingQuery          InterfaceKey = "staking_query"
	StakingExecute        InterfaceKey = "staking_execute"
	TokenInfoQuery        InterfaceKey = "token_info_query"
)

// InterfaceDescriptor is the fixed set of variants an interface adds to an
// enum, in the order they are appended.
type InterfaceDescriptor struct {
	Key      InterfaceKey
	Doc      string
	Variants []VariantSpec
}

// Names returns the variant names in registry order.
func (d InterfaceDescriptor) Names() []string {
	return variantNames(d.Variants)
}

func (d InterfaceDescriptor) clone() InterfaceDescriptor {
	d.Variants = cloneVariants(d.Variants)
	return d
}

// canonicalKey folds the kebab-case spelling used in docs and annotations
// onto the registry spelling.
func canonicalKey(key string) InterfaceKey {
	return InterfaceKey(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_"))
}

// ParseInterfaceKey accepts voting_module_query as well as
// voting-module-query.
func ParseInterfaceKey(s string) (InterfaceKey, error) {
	key := canonicalKey(s)
	if _, ok := registry[key]; !ok {
		return "", &UnknownInterfaceError{Key: InterfaceKey(s)}
	}
	return key, nil
}

// Lookup returns a copy of the descriptor registered under key.
func Lookup(key InterfaceKey) (InterfaceDescriptor, error) {
	d, ok := registry[canonicalKey(string(key))]
	if !ok {
		return InterfaceDescriptor{}, &UnknownInterfaceError{Key: key}
	}
	return d.clone(), nil
}

// Keys lists every registered interface, sorted.
func Keys() []InterfaceKey {
	keys := make([]InterfaceKey, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func named(name, doc, returns string, fields ...Field) VariantSpec {
	return VariantSpec{Name: name, Doc: doc, Kind: PayloadNamed, Returns: returns, Fields: fields}
}

func tuple(name, doc, payload string) VariantSpec {
	return VariantSpec{Name: name, Doc: doc, Kind: PayloadTuple, Fields: []Field{{Type: payload}}}
}

func field(name, typ string) Field {
	return Field{Name: name, Type: typ}
}

// Published interfaces. A descriptor only ever grows: existing contracts
// depend on the variants below staying as they are.
var registry = func() map[InterfaceKey]InterfaceDescriptor {
	descriptors := []InterfaceDescriptor{
		{
			Key: VotingModuleQuery,
			Doc: "Queries every voting module answers.",
			Variants: []VariantSpec{
				named("VotingPowerAtHeight", "Returns the voting power for an address at a given height.",
					"cwd_interface::voting::VotingPowerAtHeightResponse",
					field("address", "String"), field("height", "Option<u64>")),
				named("TotalPowerAtHeight", "Returns the total voting power at a given block height.",
					"cwd_interface::voting::TotalPowerAtHeightResponse",
					field("height", "Option<u64>")),
				named("Dao", "Returns the address of the DAO this module belongs to.", "Addr"),
				named("Info", "Returns contract version info.", "cwd_interface::voting::InfoResponse"),
			},
		},
		{
			Key: TokenQuery,
			Doc: "Voting modules backed by a token.",
			Variants: []VariantSpec{
				named("TokenContract", "", "Addr"),
			},
		},
		{
			Key: ActiveQuery,
			Doc: "Voting modules with an active threshold.",
			Variants: []VariantSpec{
				named("IsActive", "", "bool"),
			},
		},
		{
			Key: ProposalModuleQuery,
			Doc: "Queries every proposal module answers.",
			Variants: []VariantSpec{
				named("Dao", "Returns the address of the DAO this module belongs to", "Addr"),
				named("Info", "Returns contract version info", "cwd_interface::voting::InfoResponse"),
				named("ProposalCount", "Returns the number of proposals that have been created in this module.", "u64"),
				named("ProposalCreationPolicy", "Gets the current proposal creation policy for this module.",
					"cwd_voting::pre_propose::ProposalCreationPolicy"),
				named("ProposalHooks", "Lists all of the consumers of proposal hooks for this module.", "cwd_hooks::HooksResponse"),
				named("VoteHooks", "Lists all of the consumers of vote hooks for this module.", "cwd_hooks::HooksResponse"),
			},
		},
		{
			Key: ProposalModuleExecute,
			Doc: "Hook management every proposal module accepts from its DAO.",
			Variants: []VariantSpec{
				named("AddProposalHook", "Adds an address as a consumer of proposal hooks. Consumers of proposal hooks have hook messages executed on them whenever the status of a proposal changes or a proposal is created.",
					"", field("address", "String")),
				named("RemoveProposalHook", "Removes a consumer of proposal hooks.", "", field("address", "String")),
				named("AddVoteHook", "Adds an address as a consumer of vote hooks. Consumers of vote hooks have hook messages executed on them whenever a vote is cast.",
					"", field("address", "String")),
				named("RemoveVoteHook", "Removes a consumer of vote hooks.", "", field("address", "String")),
				named("UpdatePreProposeInfo", "Updates the sender's rights to create proposals.", "",
					field("info", "cwd_voting::pre_propose::PreProposeInfo")),
			},
		},
		{
			Key: PreProposeQuery,
			Doc: "Queries every pre-propose module answers.",
			Variants: []VariantSpec{
				named("ProposalModule", "Gets the proposal module that this pre propose module is associated with.", "Addr"),
				named("Dao", "Gets the DAO (cw-dao-core) module this contract is associated with.", "Addr"),
				named("Config", "Gets the module's configuration.", "cwd_pre_propose_base::state::Config"),
				named("DepositInfo", "Gets the deposit info for the proposal identified by PROPOSAL_ID.",
					"cwd_pre_propose_base::msg::DepositInfoResponse", field("proposal_id", "u64")),
				named("QueryExtension", "Extension for queries. The default implementation will do nothing if queried for will return `Binary::default()`.",
					"Binary", field("msg", "QueryExt")),
			},
		},
		{
			Key: PreProposeExecute,
			Doc: "Messages every pre-propose module accepts.",
			Variants: []VariantSpec{
				named("Propose", "Creates a new proposal in the pre-propose module. MSG will be serialized and used as the proposal creation message.",
					"", field("msg", "ProposalMessage")),
				named("UpdateConfig", "Updates the configuration of this module. This will completely override the existing configuration. Only callable by the DAO.",
					"", field("deposit_info", "Option<UncheckedDepositInfo>"), field("open_proposal_submission", "bool")),
				named("Withdraw", "Withdraws funds inside of this contract to the message sender. Only callable by the DAO.",
					"", field("denom", "Option<UncheckedDenom>")),
				named("Extension", "Extension message. Contracts that extend this one should put their custom execute logic here.",
					"", field("msg", "ExecuteExt")),
				named("ProposalCreatedHook", "Handles proposal hook fired by the associated proposal module when a proposal is created.",
					"", field("proposal_id", "u64"), field("proposer", "String")),
				named("ProposalCompletedHook", "Handles proposal hook fired by the associated proposal module when a proposal is completed.",
					"", field("proposal_id", "u64"), field("new_status", "cwd_voting::status::Status")),
			},
		},
		{
			Key: ProposalHook,
			Doc: "Receiver side of proposal hooks.",
			Variants: []VariantSpec{
				tuple("ProposalHook", "", "cwd_hooks::proposal::ProposalHookMsg"),
			},
		},
		{
			Key: VoteHook,
			Doc: "Receiver side of vote hooks.",
			Variants: []VariantSpec{
				tuple("VoteHook", "", "cwd_hooks::vote::VoteHookMsg"),
			},
		},
		{
			Key: StakeChangedHook,
			Doc: "Receiver side of stake change hooks.",
			Variants: []VariantSpec{
				tuple("StakeChangeHook", "", "cwd_hooks::stake::StakeChangedHookMsg"),
			},
		},
		{
			Key: StakingQuery,
			Doc: "Stake and unstake tracking queries of staking contracts.",
			Variants: []VariantSpec{
				named("StakedBalanceAtHeight", "", "StakedBalanceAtHeightResponse",
					field("address", "String"), field("height", "Option<u64>")),
				named("TotalStakedAtHeight", "", "TotalStakedAtHeightResponse", field("height", "Option<u64>")),
				named("Claims", "", "cw_controllers::ClaimsResponse", field("address", "String")),
				named("ListStakers", "", "ListStakersResponse",
					field("start_after", "Option<String>"), field("limit", "Option<u32>")),
			},
		},
		{
			Key: StakingExecute,
			Doc: "Stake and unstake messages of staking contracts.",
			Variants: []VariantSpec{
				named("Stake", "Stakes the funds sent along with the message.", ""),
				named("Unstake", "", "", field("amount", "Uint128")),
				named("Claim", "Claims unstaked funds whose unbonding period is over.", ""),
				named("AddHook", "", "", field("addr", "String")),
				named("RemoveHook", "", "", field("addr", "String")),
			},
		},
		{
			Key: TokenInfoQuery,
			Doc: "cw20 token info queries.",
			Variants: []VariantSpec{
				named("TokenInfo", "", "cw20::TokenInfoResponse"),
				named("Minter", "", "Option<cw20::MinterResponse>"),
				named("MarketingInfo", "", "cw20::MarketingInfoResponse"),
			},
		},
	}

	m := make(map[InterfaceKey]InterfaceDescriptor, len(descriptors))
	for _, d := range descriptors {
		m[d.Key] = d
	}
	return m
}()
