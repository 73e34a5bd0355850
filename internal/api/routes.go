package api

import (
	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/thirdfi/fund-orchestrator/internal/api/middlewares"
	_ "github.com/thirdfi/fund-orchestrator/docs"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Post("/v1/agent/init-deposit", registerHandler(handlers.InitDeposit))
	r.Post("/v1/agent/transfer", registerHandler(handlers.Transfer))
	r.Post("/v1/agent/deposit", registerHandler(handlers.Deposit))
	r.Post("/v1/agent/mint", registerHandler(handlers.Mint))
	r.Post("/v1/agent/burn", registerHandler(handlers.Burn))
	r.Post("/v1/agent/withdraw", registerHandler(handlers.Withdraw))
	r.Post("/v1/agent/gather", registerHandler(handlers.Gather))
	r.Post("/v1/agent/exit-withdrawal", registerHandler(handlers.ExitWithdrawal))
	r.Post("/v1/agent/claim", registerHandler(handlers.Claim))
	r.Post("/v1/agent/take-out", registerHandler(handlers.TakeOut))
	r.Get("/v1/agent/simulate-transfer", registerHandler(handlers.SimulateTransfer))
	r.Get("/v1/agent/nonce", registerHandler(handlers.GetAgentNonce))

	r.Get("/v1/operations/{id}", registerHandler(handlers.GetOperation))
	r.Get("/v1/operations/last", registerHandler(handlers.GetLastOperation))
	r.Get("/v1/withdraw-perc", registerHandler(handlers.GetWithdrawPerc))
	r.Get("/v1/vault/{chainId}", registerHandler(handlers.GetVault))
	r.Get("/v1/vault/{chainId}/pool-at-nonce", registerHandler(handlers.GetPoolAtNonce))
	r.Get("/v1/unbonded", registerHandler(handlers.GetUnbonded))
	r.Get("/v1/unbonded/pools", registerHandler(handlers.GetUnbondedPools))
	r.Get("/v1/composition", registerHandler(handlers.GetComposition))
	r.Get("/v1/price", registerHandler(handlers.GetPrice))

	r.Route("/v1/admin", func(admin chi.Router) {
		admin.Use(middlewares.AdminAuthMiddleware(a.cfg))
		admin.Post("/vault/{chainId}/emergency-withdraw", registerHandler(handlers.EmergencyWithdraw))
		admin.Post("/vault/{chainId}/reinvest", registerHandler(handlers.Reinvest))
		admin.Post("/vault/{chainId}/rebalance", registerHandler(handlers.Rebalance))
		admin.Post("/vault/{chainId}/claim", registerHandler(handlers.AdminClaim))
		admin.Post("/vault/{chainId}/release-emergency", registerHandler(handlers.ReleaseEmergency))
		admin.Post("/composition/token", registerHandler(handlers.ChangeCompositionToken))
		admin.Post("/adapters/{type}/peers", registerHandler(handlers.SetAdapterPeers))
		admin.Post("/accounts", registerHandler(handlers.RegisterAccount))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
