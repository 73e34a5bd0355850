package model

import (
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

const (
	OperationCollection = "operations"
	CounterCollection   = "counters"

	OperationCounterId = "operation_id"
)

// OperationDocument is one deposit-or-withdraw cycle of a single owner.
// The log is append-only; finished flips to true exactly once and documents
// are never deleted.
type OperationDocument struct {
	Id           uint64              `bson:"_id"` // global operation id, strictly increasing
	Owner        string              `bson:"owner"`
	UserNonce    uint64              `bson:"user_nonce"` // per-owner, strictly increasing
	OpType       types.OperationType `bson:"op_type"`
	PoolSnapshot uint64              `bson:"pool_snapshot"` // pool value in USD at initiation
	Amount       uint64              `bson:"amount"`        // deposit USD value or share count
	Finished     bool                `bson:"finished"`
}

// CounterDocument backs the global operation id sequence.
type CounterDocument struct {
	Id    string `bson:"_id"`
	Value uint64 `bson:"value"`
}
