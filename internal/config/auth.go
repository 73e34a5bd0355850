package config

import (
	"encoding/hex"
	"errors"
)

type AuthConfig struct {
	// AdminPubKey is the hex encoded compressed secp256k1 key allowed to sign
	// admin-gated vault and minter calls submitted through the user agent.
	AdminPubKey string `mapstructure:"admin-pub-key"`
}

func (cfg *AuthConfig) Validate() error {
	if cfg.AdminPubKey == "" {
		return errors.New("missing admin public key")
	}

	keyBytes, err := hex.DecodeString(cfg.AdminPubKey)
	if err != nil {
		return errors.New("admin public key is not valid hex")
	}

	if len(keyBytes) != 33 {
		return errors.New("admin public key must be a 33 byte compressed key")
	}

	return nil
}
