package client

const (
	RelayTransferQueueName string = "relay_transfer_queue"
	RelayDeliveryQueueName string = "relay_delivery_queue"
)

const (
	RelayTransferEventType EventType = 1
	RelayDeliveryEventType EventType = 2
)

type EventType int

// RelayTransferEvent is the outbound instruction the message-bus adapter
// publishes for the relayer network.
type RelayTransferEvent struct {
	EventType   EventType `json:"event_type"` // always 1
	TransferId  string    `json:"transfer_id"`
	Owner       string    `json:"owner"`
	FromChainId uint64    `json:"from_chain_id"`
	ToChainId   uint64    `json:"to_chain_id"`
	Peer        string    `json:"peer"`
	Token       string    `json:"token"`
	AmountUsd   uint64    `json:"amount_usd"`
	FeeUsd      uint64    `json:"fee_usd"`
}

// RelayDeliveryEvent arrives once a bridge has delivered value on the
// destination ledger. MinterNonce guards the vault credit against replays.
type RelayDeliveryEvent struct {
	EventType   EventType `json:"event_type"` // always 2
	TransferId  string    `json:"transfer_id"`
	Owner       string    `json:"owner"`
	ToChainId   uint64    `json:"to_chain_id"`
	Token       string    `json:"token"`
	AmountUsd   uint64    `json:"amount_usd"`
	MinterNonce uint64    `json:"minter_nonce"`
}
