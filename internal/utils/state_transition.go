package utils

import (
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// QualifiedStatesToUnbonded returns the qualified existing states to transition to "unbonded".
func QualifiedStatesToUnbonded() []types.TicketState {
	return []types.TicketState{types.TicketPending}
}

// QualifiedStatesToUnbondedEmergency returns the qualified existing states to
// transition to "unbonded_emergency". A matured emergency ticket keeps its
// origin so it is paid from the emergency reserve, never from the pool.
func QualifiedStatesToUnbondedEmergency() []types.TicketState {
	return []types.TicketState{types.TicketEmergency}
}

// QualifiedStatesToClaimed returns the qualified existing states to transition to "claimed".
func QualifiedStatesToClaimed() []types.TicketState {
	return []types.TicketState{types.TicketUnbonded}
}

// QualifiedStatesToTakenOut returns the qualified existing states for an
// emergency take-out. Only matured emergency tickets qualify.
func QualifiedStatesToTakenOut() []types.TicketState {
	return []types.TicketState{types.TicketUnbondedEmergency}
}

// QualifiedStatesToEmergency returns the qualified existing states to transition to "emergency".
// Already unbonded tickets keep their state; the funds behind them are liquid.
func QualifiedStatesToEmergency() []types.TicketState {
	return []types.TicketState{types.TicketPending}
}

// OutdatedStatesForClaim lists states to be ignored when claiming as they mean
// the ticket has already been processed.
var OutdatedStatesForClaim = []types.TicketState{types.TicketClaimed}
