package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/thirdfi/fund-orchestrator/internal/observability/metrics"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// StartStakingScheduler fires the invest, redeem and claim ticks for every
// configured staking pool. The per-pool interval gating lives in the
// operations themselves; the cron only provides the heartbeat, so one shared
// schedule is enough. Gating rejections are expected on most ticks and are
// logged at debug, not treated as failures.
func (s *Services) StartStakingScheduler(ctx context.Context) error {
	c := cron.New()

	cronTime := s.cfg.Staking.SchedulerInterval
	cronSpec := fmt.Sprintf("@every %ds", cronTime)

	_, err := c.AddFunc(cronSpec, func() {
		s.runStakingTick(ctx)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Ctx(ctx).Info().Int("intervalSeconds", cronTime).Msg("staking scheduler started")

	go func() {
		<-ctx.Done()
		log.Ctx(ctx).Info().Msg("stopping staking scheduler")
		c.Stop()
	}()

	return nil
}

func (s *Services) runStakingTick(ctx context.Context) {
	for i := range s.cfg.Staking.Pools {
		poolCfg := &s.cfg.Staking.Pools[i]

		ticks := []struct {
			name string
			run  func(context.Context, uint64, string) *types.Error
		}{
			{"invest", s.Invest},
			{"redeem", s.Redeem},
			{"claim_unbonded", s.ClaimUnbonded},
		}
		for _, tick := range ticks {
			if err := tick.run(ctx, poolCfg.ChainId, poolCfg.Asset); err != nil {
				metrics.RecordStakingTick(tick.name, poolCfg.Asset, metrics.Error)
				s.logTickOutcome(ctx, tick.name, poolCfg.ChainId, poolCfg.Asset, err)
				continue
			}
			metrics.RecordStakingTick(tick.name, poolCfg.Asset, metrics.Success)
		}
	}
}

// logTickOutcome demotes the expected gating rejections to debug so the logs
// only alert on ticks that actually went wrong.
func (s *Services) logTickOutcome(ctx context.Context, tick string, chainId uint64, asset string, err *types.Error) {
	event := log.Ctx(ctx).Error()
	if err.StatusCode < http.StatusInternalServerError &&
		(err.ErrorCode == types.TooSmall || err.ErrorCode == types.Paused) {
		event = log.Ctx(ctx).Debug()
	}
	event.Err(err.Err).Str("tick", tick).Uint64("chainId", chainId).Str("asset", asset).
		Str("errorCode", err.ErrorCode.String()).Msg("staking tick did not run")
}
