package types

import "fmt"

// AdapterType selects which bridge technology relays a cross-ledger
// transfer. Selection happens per call, not per deployment.
type AdapterType string

const (
	MessageBusAdapter AdapterType = "message_bus"
	LockMintAdapter   AdapterType = "lock_mint"
)

func (t AdapterType) ToString() string {
	return string(t)
}

func AdapterTypeFromString(s string) (AdapterType, error) {
	switch AdapterType(s) {
	case MessageBusAdapter:
		return MessageBusAdapter, nil
	case LockMintAdapter:
		return LockMintAdapter, nil
	default:
		return "", fmt.Errorf("unknown adapter type: %s", s)
	}
}
