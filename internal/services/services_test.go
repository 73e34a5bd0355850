package services

import (
	"time"

	"github.com/thirdfi/fund-orchestrator/internal/config"
)

const (
	testChainId = uint64(1)
	testAsset   = "stusd"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			MaxSlippageBps: 50,
		},
		Staking: config.StakingConfig{
			SchedulerInterval: 60,
			Pools: []config.StakingPoolConfig{
				{
					ChainId:         testChainId,
					Asset:           testAsset,
					InvestInterval:  time.Hour,
					RedeemInterval:  time.Hour,
					UnbondingPeriod: 48 * time.Hour,
					MinInvestAmount: 100,
					MinRedeemAmount: 100,
				},
			},
		},
		Adapters: config.AdaptersConfig{
			AllowedClients: []string{AgentCallerName},
		},
	}
}
