package db

import (
	"context"

	"github.com/thirdfi/fund-orchestrator/internal/db/model"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

type DBClient interface {
	Ping(ctx context.Context) error
	// Operation log.
	NextOperationId(ctx context.Context) (uint64, error)
	InsertOperation(ctx context.Context, doc *model.OperationDocument) error
	FindOperationById(ctx context.Context, id uint64) (*model.OperationDocument, error)
	FindLastOperationByOwner(ctx context.Context, owner string) (*model.OperationDocument, error)
	MarkOperationFinished(ctx context.Context, id uint64) error
	InsertOperationBurningShares(ctx context.Context, doc *model.OperationDocument) error
	FinishOperationMintingShares(ctx context.Context, id uint64, owner string, shares uint64) error
	// Agent nonces and accounts.
	AdvanceAgentNonce(ctx context.Context, owner string, nonce uint64) error
	GetAgentNonce(ctx context.Context, owner string) (uint64, error)
	SaveAccount(ctx context.Context, doc *model.AccountDocument) error
	FindAccountByOwner(ctx context.Context, owner string) (*model.AccountDocument, error)
	// Vaults.
	FindVault(ctx context.Context, chainId uint64) (*model.VaultDocument, error)
	DepositToVault(ctx context.Context, chainId, nonce, amountUsd uint64, buffered []model.BufferedDeposit) error
	WithdrawFromVault(ctx context.Context, chainId, nonce, releasedUsd, pendingUsd uint64) error
	FindVaultNonce(ctx context.Context, chainId, nonce uint64) (*model.VaultNonceDocument, error)
	PauseVaultForEmergency(ctx context.Context, chainId, stakedUsd uint64) error
	ReinvestVault(ctx context.Context, chainId uint64, composition []model.CompositionEntry) error
	ReleaseEmergencyFunds(ctx context.Context, chainId, amountUsd uint64) error
	PayEmergencyClaim(ctx context.Context, chainId, amountUsd uint64) error
	PayPendingClaim(ctx context.Context, chainId, amountUsd uint64) error
	IncVaultPool(ctx context.Context, chainId, amountUsd uint64) error
	SetVaultComposition(ctx context.Context, chainId uint64, composition []model.CompositionEntry) error
	// Fund shares.
	GetShareBalance(ctx context.Context, owner string) (uint64, error)
	GetTotalShareSupply(ctx context.Context) (uint64, error)
	// Target composition.
	GetComposition(ctx context.Context) (*model.CompositionDocument, error)
	SaveComposition(ctx context.Context, entries []model.TargetCompositionEntry) error
	// Staking pools and the unbonding queue.
	FindStakingPool(ctx context.Context, chainId uint64, asset string) (*model.StakingPoolDocument, error)
	InvestStakingPool(ctx context.Context, chainId uint64, asset string, bufferedUsd, sharesMinted uint64, nowTs int64) error
	AddWithdrawRequest(ctx context.Context, req *model.WithdrawRequestDocument) error
	FindWithdrawRequests(ctx context.Context, chainId uint64, asset string) ([]model.WithdrawRequestDocument, error)
	FindWithdrawRequestsByOwner(ctx context.Context, owner string) ([]model.WithdrawRequestDocument, error)
	SaveRedeemBatch(ctx context.Context, chainId uint64, asset string, tickets []model.UnbondingTicketDocument, sharesRedeemed, totalUsd uint64, nowTs int64) error
	FindTicketsInRange(ctx context.Context, chainId uint64, asset string, fromSeq, toSeq uint64) ([]model.UnbondingTicketDocument, error)
	FindTicketsByOwner(ctx context.Context, owner string) ([]model.UnbondingTicketDocument, error)
	TransitionTicketState(ctx context.Context, chainId uint64, asset string, seq uint64, eligiblePreviousStates []types.TicketState, newState types.TicketState) error
	AdvanceTicketHead(ctx context.Context, chainId uint64, asset string, fromSeq, toSeq uint64) error
	FindTicketByClaimId(ctx context.Context, claimId string) (*model.UnbondingTicketDocument, error)
	ClaimTicket(ctx context.Context, claimId, owner string, eligibleStates []types.TicketState) (*model.UnbondingTicketDocument, error)
	MarkPoolEmergency(ctx context.Context, chainId uint64, asset string) error
	ClearPoolEmergency(ctx context.Context, chainId uint64, asset string) error
	CountTicketsInStates(ctx context.Context, chainId uint64, asset string, states []types.TicketState) (int64, error)
	// Cross-ledger adapters.
	SaveAdapterPeers(ctx context.Context, adapterType string, chainIds []uint64, peers []string) error
	FindAdapterPeer(ctx context.Context, adapterType string, chainId uint64) (*model.AdapterPeerDocument, error)
	SaveRelayTransfer(ctx context.Context, doc *model.RelayTransferDocument) error
	MarkRelayTransferDelivered(ctx context.Context, transferId string) error
	// Queue poison messages.
	SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error
	FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error)
	DeleteUnprocessableMessage(ctx context.Context, receipt string) error
}
