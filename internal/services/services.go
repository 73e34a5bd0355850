package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/thirdfi/fund-orchestrator/internal/adapters"
	"github.com/thirdfi/fund-orchestrator/internal/clients"
	"github.com/thirdfi/fund-orchestrator/internal/config"
	"github.com/thirdfi/fund-orchestrator/internal/db"
	queueclient "github.com/thirdfi/fund-orchestrator/internal/queue/client"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// AgentCallerName identifies the user agent on the adapter allow-list.
const AgentCallerName = "user_agent"

// Service layer contains the business logic and is used to interact with
// the database and other external clients (if any).
type Services struct {
	DbClient db.DBClient
	cfg      *config.Config
	Clients  *clients.Clients
	Adapters *adapters.Registry
}

func New(ctx context.Context, cfg *config.Config, clients *clients.Clients) (*Services, error) {
	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Ctx(ctx).Fatal().Err(err).Msg("error while creating db client")
		return nil, err
	}

	transferQueueClient, err := queueclient.NewQueueClient(&cfg.Queue, cfg.Adapters.MessageBus.TransferQueueName)
	if err != nil {
		log.Ctx(ctx).Fatal().Err(err).Msg("error while creating transfer queue client")
		return nil, err
	}

	registry := adapters.NewRegistry(
		&cfg.Adapters,
		adapters.NewMessageBusAdapter(&cfg.Adapters.MessageBus, dbClient, transferQueueClient),
		adapters.NewLockMintAdapter(&cfg.Adapters.LockMint, dbClient),
	)

	return &Services{
		DbClient: dbClient,
		cfg:      cfg,
		Clients:  clients,
		Adapters: registry,
	}, nil
}

// DoHealthCheck checks the health of the services by ping the database.
func (s *Services) DoHealthCheck(ctx context.Context) error {
	return s.DbClient.Ping(ctx)
}

func (s *Services) SaveUnprocessableMessages(ctx context.Context, messageBody, receipt string) *types.Error {
	err := s.DbClient.SaveUnprocessableMessage(ctx, messageBody, receipt)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while saving unprocessable message")
		return types.NewErrorWithMsg(http.StatusInternalServerError, types.InternalServiceError, "error while saving unprocessable message")
	}
	return nil
}
