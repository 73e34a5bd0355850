package config

import (
	"errors"
	"net/url"
)

// MessageBusAdapterConfig configures the queue backed bridge adapter. The
// flat fee covers the relayer's cost of re-emitting the instruction on the
// destination ledger.
type MessageBusAdapterConfig struct {
	TransferQueueName string `mapstructure:"transfer-queue-name"`
	FlatFee           uint64 `mapstructure:"flat-fee"`
}

func (cfg *MessageBusAdapterConfig) Validate() error {
	if cfg.TransferQueueName == "" {
		return errors.New("transfer-queue-name cannot be empty")
	}
	return nil
}

// LockMintAdapterConfig configures the lock/mint bridge adapter, which
// delegates fee quoting and relaying to an external bridge API.
type LockMintAdapterConfig struct {
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	Timeout int    `mapstructure:"timeout"`
}

func (cfg *LockMintAdapterConfig) Validate() error {
	if cfg.Host == "" {
		return errors.New("host cannot be empty")
	}
	if cfg.Port == "" {
		return errors.New("port cannot be empty")
	}
	if cfg.Timeout <= 0 {
		return errors.New("timeout cannot be smaller or equal to 0")
	}
	parsedURL, err := url.ParseRequestURI(cfg.Host)
	if err != nil {
		return errors.New("invalid bridge service host")
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("host must start with http or https")
	}
	return nil
}

type AdaptersConfig struct {
	// AllowedClients restricts which internal callers may move value through
	// an adapter. Transfers requested by anything else are rejected.
	AllowedClients []string                `mapstructure:"allowed-clients"`
	MessageBus     MessageBusAdapterConfig `mapstructure:"message-bus"`
	LockMint       LockMintAdapterConfig   `mapstructure:"lock-mint"`
}

func (cfg *AdaptersConfig) Validate() error {
	if len(cfg.AllowedClients) == 0 {
		return errors.New("allowed-clients cannot be empty")
	}

	if err := cfg.MessageBus.Validate(); err != nil {
		return err
	}

	if err := cfg.LockMint.Validate(); err != nil {
		return err
	}

	return nil
}
