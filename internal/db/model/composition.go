package model

const CompositionCollection = "compositions"

// FundCompositionId is the single composition document of the fund. The
// minter prices shares against one global target allocation.
const FundCompositionId = "fund"

// TargetCompositionEntry maps (chainId, token) to its target percentage of
// the whole fund, in basis points.
type TargetCompositionEntry struct {
	ChainId      uint64 `bson:"chain_id"`
	Token        string `bson:"token"`
	TargetPercBp uint64 `bson:"target_perc_bp"`
}

// CompositionDocument holds the cross-ledger target allocation. The entries'
// percentages sum to types.PercDenominator, enforced on every mutation.
type CompositionDocument struct {
	Id      string                   `bson:"_id"`
	Entries []TargetCompositionEntry `bson:"entries"`
}
