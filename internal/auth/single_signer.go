package auth

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

// SingleSigner authenticates a plain account. The account id is the hex
// encoded compressed public key itself, so the only acceptable signer is the
// caller's own key.
type SingleSigner struct {
	pubKey *btcec.PublicKey
}

func NewSingleSigner(pubKeyHex string) (*SingleSigner, error) {
	pubKey, err := parsePubKey(pubKeyHex)
	if err != nil {
		return nil, err
	}
	return &SingleSigner{pubKey: pubKey}, nil
}

func (s *SingleSigner) Verify(digest []byte, signatures []string) error {
	if len(signatures) != 1 {
		return fmt.Errorf("%w: expected exactly one signature, got %d", ErrInvalidSignature, len(signatures))
	}
	sig, err := parseSignature(signatures[0])
	if err != nil {
		return err
	}
	if !sig.Verify(digest, s.pubKey) {
		return ErrInvalidSignature
	}
	return nil
}
