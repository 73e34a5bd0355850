package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thirdfi/fund-orchestrator/internal/config"
)

func validStakingConfig() config.StakingConfig {
	return config.StakingConfig{
		Host:              "http://localhost",
		Port:              "8092",
		Timeout:           10,
		SchedulerInterval: 60,
		Pools: []config.StakingPoolConfig{
			{
				ChainId:         1,
				Asset:           "stusd",
				InvestInterval:  time.Hour,
				RedeemInterval:  time.Hour,
				UnbondingPeriod: 48 * time.Hour,
			},
		},
	}
}

func TestStakingConfigValidates(t *testing.T) {
	cfg := validStakingConfig()
	require.NoError(t, cfg.Validate())
}

func TestStakingConfigRejectsDuplicatePools(t *testing.T) {
	cfg := validStakingConfig()
	cfg.Pools = append(cfg.Pools, cfg.Pools[0])
	require.Error(t, cfg.Validate())
}

func TestStakingPoolConfigRejectsZeroUnbondingPeriod(t *testing.T) {
	cfg := validStakingConfig()
	cfg.Pools[0].UnbondingPeriod = 0
	require.Error(t, cfg.Validate())
}

func TestStakingConfigRejectsZeroSchedulerInterval(t *testing.T) {
	cfg := validStakingConfig()
	cfg.SchedulerInterval = 0
	require.Error(t, cfg.Validate())
}

func TestPoolConfigLookup(t *testing.T) {
	cfg := validStakingConfig()
	require.NotNil(t, cfg.PoolConfig(1, "stusd"))
	require.Nil(t, cfg.PoolConfig(1, "usdt"))
	require.Nil(t, cfg.PoolConfig(2, "stusd"))
}
