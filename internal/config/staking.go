package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// StakingPoolConfig carries the unbonding state machine parameters of one
// staking pool (one staked asset on one chain).
type StakingPoolConfig struct {
	ChainId         uint64        `mapstructure:"chain-id"`
	Asset           string        `mapstructure:"asset"`
	InvestInterval  time.Duration `mapstructure:"invest-interval"`
	RedeemInterval  time.Duration `mapstructure:"redeem-interval"`
	UnbondingPeriod time.Duration `mapstructure:"unbonding-period"`
	MinInvestAmount uint64        `mapstructure:"min-invest-amount"`
	MinRedeemAmount uint64        `mapstructure:"min-redeem-amount"`
}

func (cfg *StakingPoolConfig) Validate() error {
	if cfg.ChainId == 0 {
		return errors.New("staking pool chain-id cannot be 0")
	}
	if cfg.Asset == "" {
		return errors.New("staking pool asset cannot be empty")
	}
	if cfg.InvestInterval <= 0 || cfg.RedeemInterval <= 0 {
		return errors.New("invest and redeem intervals must be positive")
	}
	if cfg.UnbondingPeriod <= 0 {
		return errors.New("unbonding period must be positive")
	}
	return nil
}

type StakingConfig struct {
	Host              string              `mapstructure:"host"`
	Port              string              `mapstructure:"port"`
	Timeout           int                 `mapstructure:"timeout"`
	SchedulerInterval int                 `mapstructure:"scheduler-interval"`
	Pools             []StakingPoolConfig `mapstructure:"pools"`
}

func (cfg *StakingConfig) Validate() error {
	if cfg.Host == "" {
		return errors.New("host cannot be empty")
	}

	if cfg.Port == "" {
		return errors.New("port cannot be empty")
	}

	if cfg.Timeout <= 0 {
		return errors.New("timeout cannot be smaller or equal to 0")
	}

	if cfg.SchedulerInterval <= 0 {
		return errors.New("scheduler-interval cannot be smaller or equal to 0")
	}

	parsedURL, err := url.ParseRequestURI(cfg.Host)
	if err != nil {
		return errors.New("invalid staking service host")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("host must start with http or https")
	}

	seen := make(map[string]bool)
	for i := range cfg.Pools {
		if err := cfg.Pools[i].Validate(); err != nil {
			return err
		}
		key := fmt.Sprintf("%d/%s", cfg.Pools[i].ChainId, cfg.Pools[i].Asset)
		if seen[key] {
			return fmt.Errorf("duplicated staking pool: %s", key)
		}
		seen[key] = true
	}

	return nil
}

// PoolConfig returns the config of the (chainId, asset) pool, or nil if the
// pool is not configured.
func (cfg *StakingConfig) PoolConfig(chainId uint64, asset string) *StakingPoolConfig {
	for i := range cfg.Pools {
		if cfg.Pools[i].ChainId == chainId && cfg.Pools[i].Asset == asset {
			return &cfg.Pools[i]
		}
	}
	return nil
}
