package auth

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrThresholdNotMet  = errors.New("not enough valid signatures")
	ErrInvalidPublicKey = errors.New("invalid public key")
)

// Authenticator checks request signatures over a digest. Implementations
// differ in who may sign: a single key for plain accounts, k of n registered
// keys for threshold wallets.
type Authenticator interface {
	Verify(digest []byte, signatures []string) error
}

func parsePubKey(pubKeyHex string) (*btcec.PublicKey, error) {
	keyBytes, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not hex", ErrInvalidPublicKey, pubKeyHex)
	}
	pubKey, err := btcec.ParsePubKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return pubKey, nil
}

func parseSignature(sigHex string) (*ecdsa.Signature, error) {
	sigBytes, err := hex.DecodeString(sigHex)
	if err != nil {
		return nil, fmt.Errorf("%w: signature is not hex", ErrInvalidSignature)
	}
	sig, err := ecdsa.ParseDERSignature(sigBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return sig, nil
}
