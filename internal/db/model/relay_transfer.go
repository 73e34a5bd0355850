package model

const RelayTransferCollection = "relay_transfers"

const (
	RelayTransferSent      = "SENT"
	RelayTransferDelivered = "DELIVERED"
)

// RelayTransferDocument is the outbound audit record of one cross-ledger
// relay instruction.
type RelayTransferDocument struct {
	TransferId  string `bson:"_id"`
	Owner       string `bson:"owner"`
	FromChainId uint64 `bson:"from_chain_id"`
	ToChainId   uint64 `bson:"to_chain_id"`
	Token       string `bson:"token"`
	AmountUsd   uint64 `bson:"amount_usd"`
	AdapterType string `bson:"adapter_type"`
	FeeUsd      uint64 `bson:"fee_usd"`
	State       string `bson:"state"`
}
