package model

import (
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

const UnbondingTicketCollection = "unbonding_tickets"

// UnbondingTicketDocument is a staking redemption in flight. ClaimId is an
// opaque capability token: presenting it together with the matching owner is
// the right to claim, there is no other ownership structure.
type UnbondingTicketDocument struct {
	ChainId              uint64            `bson:"chain_id"`
	Asset                string            `bson:"asset"`
	Seq                  uint64            `bson:"seq"`
	Owner                string            `bson:"owner"`
	ClaimId              string            `bson:"claim_id"` // Unique Index
	StakedSharesRedeemed uint64            `bson:"staked_shares_redeemed"`
	ExpectedUnderlying   uint64            `bson:"expected_underlying"`
	ReadyAtTs            int64             `bson:"ready_at_ts"`
	State                types.TicketState `bson:"state"`
}
