package types

type OperationType string

const (
	OperationDeposit  OperationType = "deposit"
	OperationWithdraw OperationType = "withdraw"
)

func (t OperationType) ToString() string {
	return string(t)
}
