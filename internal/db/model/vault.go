package model

const (
	VaultCollection      = "vaults"
	VaultNonceCollection = "vault_nonces"
)

// CompositionEntry is one token of a vault's current composition.
type CompositionEntry struct {
	Token  string `bson:"token"`
	PercBp uint64 `bson:"perc_bp"`
}

// VaultDocument is the per-ledger custody record. PoolUsd is the
// authoritative pool value used by the minter for share pricing.
type VaultDocument struct {
	ChainId               uint64             `bson:"_id"`
	PoolUsd               uint64             `bson:"pool_usd"`
	LastNonce             uint64             `bson:"last_nonce"`
	Paused                bool               `bson:"paused"`
	PendingClaimsUsd      uint64             `bson:"pending_claims_usd"`
	EmergencyUnbondingUsd uint64             `bson:"emergency_unbonding_usd"`
	Composition           []CompositionEntry `bson:"composition"`
}

// VaultNonceDocument records (poolBefore, amountMoved) for every accepted
// vault operation nonce. Written once per accepted call; read by
// reconciliation and auditing.
type VaultNonceDocument struct {
	ChainId     uint64 `bson:"chain_id"`
	Nonce       uint64 `bson:"nonce"`
	PoolBefore  uint64 `bson:"pool_before"`
	AmountMoved uint64 `bson:"amount_moved"`
}
