package model

const AdapterPeerCollection = "adapter_peers"

// AdapterPeerDocument is the trusted remote endpoint of one adapter on one
// chain. Transfers toward a chain without a peer fail with INVALID_PEER.
type AdapterPeerDocument struct {
	AdapterType string `bson:"adapter_type"`
	ChainId     uint64 `bson:"chain_id"`
	Peer        string `bson:"peer"`
}
