package model

const AgentNonceCollection = "agent_nonces"

// AgentNonceDocument stores the last accepted nonce per user agent caller.
// It advances on every successfully authorized call, which is what makes a
// replayed signature worthless.
type AgentNonceDocument struct {
	Owner string `bson:"_id"`
	Nonce uint64 `bson:"nonce"`
}
