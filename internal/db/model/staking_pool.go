package model

const (
	StakingPoolCollection     = "staking_pools"
	WithdrawRequestCollection = "withdraw_requests"
)

// StakingPoolDocument is the unbonding state machine of one staked asset on
// one chain. FirstSeq/LastSeq are the head/tail pointers into the
// append-only ticket sequence; PendingWithdrawals always equals the sum of
// outstanding tickets' expected underlying amounts.
type StakingPoolDocument struct {
	ChainId              uint64 `bson:"chain_id"`
	Asset                string `bson:"asset"`
	BufferedDeposits     uint64 `bson:"buffered_deposits"`
	StakedShares         uint64 `bson:"staked_shares"`
	RequestedWithdrawals uint64 `bson:"requested_withdrawals"` // accumulated since the last redeem
	PendingWithdrawals   uint64 `bson:"pending_withdrawals"`   // ticketed, not yet claimed
	FirstSeq             uint64 `bson:"first_seq"`
	LastSeq              uint64 `bson:"last_seq"`
	LastInvestTs         int64  `bson:"last_invest_ts"`
	LastRedeemTs         int64  `bson:"last_redeem_ts"`
	EmergencyUnbonding   bool   `bson:"emergency_unbonding"`
}

// BufferedDeposit is one staking pool's share of a vault deposit, credited
// to the pool buffer inside the same transaction as the vault credit.
type BufferedDeposit struct {
	Asset     string
	AmountUsd uint64
}

// WithdrawRequestDocument is one user's pending withdrawal request, waiting
// to be batched into an unbonding ticket by the next redeem.
type WithdrawRequestDocument struct {
	ChainId     uint64 `bson:"chain_id"`
	Asset       string `bson:"asset"`
	Owner       string `bson:"owner"`
	AmountUsd   uint64 `bson:"amount_usd"`
	RequestedTs int64  `bson:"requested_ts"`
}
