package clients

import (
	"github.com/thirdfi/fund-orchestrator/internal/clients/oracle"
	"github.com/thirdfi/fund-orchestrator/internal/clients/staking"
	"github.com/thirdfi/fund-orchestrator/internal/config"
)

type Clients struct {
	Oracle  oracle.OracleClientInterface
	Staking staking.StakingClientInterface
}

func New(cfg *config.Config) *Clients {
	oracleClient := oracle.NewOracleClient(&cfg.Oracle)
	stakingClient := staking.NewStakingClient(&cfg.Staking)

	return &Clients{
		Oracle:  oracleClient,
		Staking: stakingClient,
	}
}
