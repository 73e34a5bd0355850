package auth

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

// ThresholdWallet authenticates a registered k-of-n wallet. A request is
// valid when at least k signatures verify, each against a distinct
// registered key.
type ThresholdWallet struct {
	threshold uint32
	pubKeys   []*btcec.PublicKey
}

func NewThresholdWallet(threshold uint32, pubKeysHex []string) (*ThresholdWallet, error) {
	if threshold == 0 {
		return nil, fmt.Errorf("threshold must be at least 1")
	}
	if int(threshold) > len(pubKeysHex) {
		return nil, fmt.Errorf("threshold %d exceeds the %d registered keys", threshold, len(pubKeysHex))
	}

	seen := make(map[string]bool)
	pubKeys := make([]*btcec.PublicKey, 0, len(pubKeysHex))
	for _, keyHex := range pubKeysHex {
		if seen[keyHex] {
			return nil, fmt.Errorf("%w: duplicated key %s", ErrInvalidPublicKey, keyHex)
		}
		seen[keyHex] = true

		pubKey, err := parsePubKey(keyHex)
		if err != nil {
			return nil, err
		}
		pubKeys = append(pubKeys, pubKey)
	}
	return &ThresholdWallet{threshold: threshold, pubKeys: pubKeys}, nil
}

func (w *ThresholdWallet) Verify(digest []byte, signatures []string) error {
	used := make([]bool, len(w.pubKeys))
	var valid uint32

	for _, sigHex := range signatures {
		sig, err := parseSignature(sigHex)
		if err != nil {
			return err
		}
		// A signature counts once: it is matched against the first unused
		// key it verifies for, so a repeated signature cannot inflate the
		// count.
		for i, key := range w.pubKeys {
			if used[i] {
				continue
			}
			if sig.Verify(digest, key) {
				used[i] = true
				valid++
				break
			}
		}
	}

	if valid < w.threshold {
		return fmt.Errorf("%w: %d valid of %d required", ErrThresholdNotMet, valid, w.threshold)
	}
	return nil
}
