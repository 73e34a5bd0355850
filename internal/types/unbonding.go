package types

// TicketState is the lifecycle of an unbonding ticket. Tickets are claimed
// strictly in FIFO request order because the external staking system settles
// unstake requests in the order they were made.
type TicketState string

const (
	TicketPending   TicketState = "pending"
	TicketUnbonded  TicketState = "unbonded"
	TicketClaimed   TicketState = "claimed"
	TicketEmergency TicketState = "emergency"
	// TicketUnbondedEmergency marks a matured emergency ticket. The payout
	// comes from the vault's emergency reserve rather than the pool, so the
	// origin must survive maturation.
	TicketUnbondedEmergency TicketState = "unbonded_emergency"
)

func (s TicketState) ToString() string {
	return string(s)
}

// UnbondedView decomposes a user's staking claims into what is still
// waiting on the external unbonding delay, what is ready to claim, and the
// longest remaining delay. Derived views never mutate state.
type UnbondedView struct {
	WaitingInUSD  uint64 `json:"waiting_in_usd"`
	UnbondedInUSD uint64 `json:"unbonded_in_usd"`
	WaitForTs     int64  `json:"wait_for_ts"`
}
