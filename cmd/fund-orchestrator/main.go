package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/thirdfi/fund-orchestrator/cmd/fund-orchestrator/cli"
	"github.com/thirdfi/fund-orchestrator/cmd/fund-orchestrator/scripts"
	"github.com/thirdfi/fund-orchestrator/internal/api"
	"github.com/thirdfi/fund-orchestrator/internal/clients"
	"github.com/thirdfi/fund-orchestrator/internal/config"
	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"github.com/thirdfi/fund-orchestrator/internal/observability/healthcheck"
	"github.com/thirdfi/fund-orchestrator/internal/observability/metrics"
	"github.com/thirdfi/fund-orchestrator/internal/queue"
	"github.com/thirdfi/fund-orchestrator/internal/services"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	ctx := context.Background()

	// setup cli commands and flags
	if err := cli.Setup(); err != nil {
		log.Fatal().Err(err).Msg("error while setting up cli")
	}

	// load config
	cfgPath := cli.GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	err = model.Setup(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up db model")
	}

	externalClients := clients.New(cfg)
	services, err := services.New(ctx, cfg, externalClients)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up services layer")
	}
	// Start the relay delivery queue processing
	queues := queue.New(&cfg.Queue, services)

	// Check if the replay flag is set
	if cli.GetReplayFlag() {
		log.Info().Msg("Replay flag is set. Starting replay of unprocessable messages.")
		err := scripts.ReplayUnprocessableMessages(ctx, cfg, queues, services.DbClient)
		if err != nil {
			log.Fatal().Err(err).Msg("error while replaying unprocessable messages")
		}
		return
	}

	queues.StartReceivingMessages()

	if err := healthcheck.StartHealthCheckCron(ctx, queues, cfg.Server.HealthCheckInterval); err != nil {
		log.Fatal().Err(err).Msg("error while starting health check cron")
	}

	if err := services.StartStakingScheduler(ctx); err != nil {
		log.Fatal().Err(err).Msg("error while starting staking scheduler")
	}

	apiServer, err := api.New(ctx, cfg, services)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up api service")
	}
	if err = apiServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("error while starting api service")
	}
}
