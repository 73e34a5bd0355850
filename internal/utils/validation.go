package utils

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// IsValidAccount checks if the given string is a hex encoded compressed
// secp256k1 public key. Single-signer accounts are addressed by their key;
// threshold wallets are addressed by a registered wallet id, which is
// validated against the account registry instead.
func IsValidAccount(account string) bool {
	keyBytes, err := hex.DecodeString(account)
	if err != nil {
		return false
	}
	_, err = btcec.ParsePubKey(keyBytes)
	return err == nil
}

// IsValidSignatureFormat checks if the given string is a valid DER signature
// in hex format. Note: it does not check the signature against any digest.
func IsValidSignatureFormat(sigHex string) bool {
	sigBytes, err := hex.DecodeString(sigHex)
	if err != nil {
		return false
	}
	_, err = ecdsa.ParseDERSignature(sigBytes)
	return err == nil
}
