package handlers

import (
	"net/http"
	"strings"

	"github.com/thirdfi/fund-orchestrator/internal/observability/metrics"
	"github.com/thirdfi/fund-orchestrator/internal/services"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// AgentAuthPayload is the authorization envelope embedded in every agent
// phase payload.
type AgentAuthPayload struct {
	Caller     string   `json:"caller"`
	Nonce      uint64   `json:"nonce"`
	Signatures []string `json:"signatures"`
}

func (p *AgentAuthPayload) validate() *types.Error {
	if p.Caller == "" {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "caller is required")
	}
	if p.Nonce == 0 {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "nonce is required")
	}
	if len(p.Signatures) == 0 {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "at least one signature is required")
	}
	return nil
}

func (p *AgentAuthPayload) toRequest() *services.AgentRequest {
	return &services.AgentRequest{
		Caller:     p.Caller,
		Nonce:      p.Nonce,
		Signatures: p.Signatures,
	}
}

type InitDepositPayload struct {
	AgentAuthPayload
	PoolSnapshot uint64 `json:"pool_snapshot"`
	AmountUsd    uint64 `json:"amount_usd"`
}

// InitDeposit godoc
// @Summary Open a deposit cycle
// @Description Opens a new deposit operation for the caller, priced at the supplied pool snapshot.
// @Accept json
// @Produce json
// @Param payload body InitDepositPayload true "Init Deposit Payload"
// @Success 200 {object} PublicResponse[model.OperationDocument]
// @Failure 403 {object} types.Error "Invalid signature, stale nonce or unfinished previous operation"
// @Router /v1/agent/init-deposit [post]
func (h *Handler) InitDeposit(request *http.Request) (*Result, *types.Error) {
	payload, err := parseJSONPayload[InitDepositPayload](request)
	if err != nil {
		return nil, err
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}

	timer := metrics.StartAgentPhaseTimer("init_deposit")
	op, opErr := h.services.InitDeposit(request.Context(), payload.toRequest(), payload.PoolSnapshot, payload.AmountUsd)
	if opErr != nil {
		timer(metrics.Error)
		return nil, opErr
	}
	timer(metrics.Success)
	return NewResult(op), nil
}

type TransferPayload struct {
	AgentAuthPayload
	FromChainId    uint64   `json:"from_chain_id"`
	Token          string   `json:"token"`
	Amounts        []uint64 `json:"amounts"`
	ToChainIds     []uint64 `json:"to_chain_ids"`
	AdapterTypes   []string `json:"adapter_types"`
	SuppliedFeeUsd uint64   `json:"supplied_fee_usd"`
}

// Transfer godoc
// @Summary Fan value out to destination ledgers
// @Description Relays the caller's value to each destination through the selected adapters. The supplied fee must cover the aggregate quote.
// @Accept json
// @Produce json
// @Param payload body TransferPayload true "Transfer Payload"
// @Success 200 {object} PublicResponse[[]services.TransferOutcome]
// @Failure 400 {object} types.Error "Insufficient fee or invalid legs"
// @Router /v1/agent/transfer [post]
func (h *Handler) Transfer(request *http.Request) (*Result, *types.Error) {
	payload, err := parseJSONPayload[TransferPayload](request)
	if err != nil {
		return nil, err
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}

	timer := metrics.StartAgentPhaseTimer("transfer")
	outcomes, transferErr := h.services.Transfer(
		request.Context(), payload.toRequest(), payload.FromChainId, payload.Token,
		payload.Amounts, payload.ToChainIds, payload.AdapterTypes, payload.SuppliedFeeUsd,
	)
	if transferErr != nil {
		timer(metrics.Error)
		return nil, transferErr
	}
	timer(metrics.Success)
	return NewResult(outcomes), nil
}

type DepositPayload struct {
	AgentAuthPayload
	OperationId uint64   `json:"operation_id"`
	ToChainIds  []uint64 `json:"to_chain_ids"`
	Tokens      []string `json:"tokens"`
	Amounts     []uint64 `json:"amounts"`
}

// Deposit godoc
// @Summary Credit destination vaults
// @Description Credits each destination vault once the transferred funds arrived, guarded by the open operation id.
// @Accept json
// @Produce json
// @Param payload body DepositPayload true "Deposit Payload"
// @Success 202 "Vaults credited"
// @Failure 403 {object} types.Error "Stale nonce, paused vault or finished operation"
// @Router /v1/agent/deposit [post]
func (h *Handler) Deposit(request *http.Request) (*Result, *types.Error) {
	payload, err := parseJSONPayload[DepositPayload](request)
	if err != nil {
		return nil, err
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}

	timer := metrics.StartAgentPhaseTimer("deposit")
	depositErr := h.services.Deposit(
		request.Context(), payload.toRequest(), payload.OperationId,
		payload.ToChainIds, payload.Tokens, payload.Amounts,
	)
	if depositErr != nil {
		timer(metrics.Error)
		return nil, depositErr
	}
	timer(metrics.Success)
	return &Result{Status: http.StatusAccepted}, nil
}

type MintPayload struct {
	AgentAuthPayload
	OperationId uint64 `json:"operation_id"`
}

type MintResponse struct {
	SharesMinted uint64 `json:"shares_minted"`
}

// Mint godoc
// @Summary Close a deposit cycle
// @Description Mints shares for the open deposit operation and marks it finished.
// @Accept json
// @Produce json
// @Param payload body MintPayload true "Mint Payload"
// @Success 200 {object} PublicResponse[MintResponse]
// @Failure 403 {object} types.Error "Already finished"
// @Router /v1/agent/mint [post]
func (h *Handler) Mint(request *http.Request) (*Result, *types.Error) {
	payload, err := parseJSONPayload[MintPayload](request)
	if err != nil {
		return nil, err
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}

	timer := metrics.StartAgentPhaseTimer("mint")
	shares, mintErr := h.services.Mint(request.Context(), payload.toRequest(), payload.OperationId)
	if mintErr != nil {
		timer(metrics.Error)
		return nil, mintErr
	}
	timer(metrics.Success)
	return NewResult(MintResponse{SharesMinted: shares}), nil
}

type BurnPayload struct {
	AgentAuthPayload
	PoolSnapshot uint64 `json:"pool_snapshot"`
	ShareAmount  uint64 `json:"share_amount"`
}

// Burn godoc
// @Summary Open a withdraw cycle
// @Description Burns the caller's shares and opens a withdraw operation.
// @Accept json
// @Produce json
// @Param payload body BurnPayload true "Burn Payload"
// @Success 200 {object} PublicResponse[model.OperationDocument]
// @Failure 403 {object} types.Error "Unfinished previous operation"
// @Router /v1/agent/burn [post]
func (h *Handler) Burn(request *http.Request) (*Result, *types.Error) {
	payload, err := parseJSONPayload[BurnPayload](request)
	if err != nil {
		return nil, err
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}

	timer := metrics.StartAgentPhaseTimer("burn")
	op, burnErr := h.services.Burn(request.Context(), payload.toRequest(), payload.PoolSnapshot, payload.ShareAmount)
	if burnErr != nil {
		timer(metrics.Error)
		return nil, burnErr
	}
	timer(metrics.Success)
	return NewResult(op), nil
}

type WithdrawPayload struct {
	AgentAuthPayload
	OperationId uint64   `json:"operation_id"`
	PercBp      uint64   `json:"perc_bp"`
	ChainIds    []uint64 `json:"chain_ids"`
}

// Withdraw godoc
// @Summary Release pool value for an open withdraw
// @Description Releases the given basis points of each named vault's pool. Partial settlement is reported per vault.
// @Accept json
// @Produce json
// @Param payload body WithdrawPayload true "Withdraw Payload"
// @Success 200 {object} PublicResponse[map[uint64]services.WithdrawOutcome]
// @Failure 403 {object} types.Error "Stale nonce or finished operation"
// @Router /v1/agent/withdraw [post]
func (h *Handler) Withdraw(request *http.Request) (*Result, *types.Error) {
	payload, err := parseJSONPayload[WithdrawPayload](request)
	if err != nil {
		return nil, err
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}

	timer := metrics.StartAgentPhaseTimer("withdraw")
	outcomes, withdrawErr := h.services.Withdraw(
		request.Context(), payload.toRequest(), payload.OperationId, payload.PercBp, payload.ChainIds,
	)
	if withdrawErr != nil {
		timer(metrics.Error)
		return nil, withdrawErr
	}
	timer(metrics.Success)
	return NewResult(outcomes), nil
}

type GatherPayload struct {
	AgentAuthPayload
	ToChainId      uint64   `json:"to_chain_id"`
	Token          string   `json:"token"`
	Amounts        []uint64 `json:"amounts"`
	FromChainIds   []uint64 `json:"from_chain_ids"`
	AdapterTypes   []string `json:"adapter_types"`
	SuppliedFeeUsd uint64   `json:"supplied_fee_usd"`
}

// Gather godoc
// @Summary Gather released value home
// @Description Relays released value from the source ledgers back to the caller's home ledger.
// @Accept json
// @Produce json
// @Param payload body GatherPayload true "Gather Payload"
// @Success 200 {object} PublicResponse[[]services.TransferOutcome]
// @Failure 400 {object} types.Error "Insufficient fee or invalid legs"
// @Router /v1/agent/gather [post]
func (h *Handler) Gather(request *http.Request) (*Result, *types.Error) {
	payload, err := parseJSONPayload[GatherPayload](request)
	if err != nil {
		return nil, err
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}

	timer := metrics.StartAgentPhaseTimer("gather")
	outcomes, gatherErr := h.services.Gather(
		request.Context(), payload.toRequest(), payload.ToChainId, payload.Token,
		payload.Amounts, payload.FromChainIds, payload.AdapterTypes, payload.SuppliedFeeUsd,
	)
	if gatherErr != nil {
		timer(metrics.Error)
		return nil, gatherErr
	}
	timer(metrics.Success)
	return NewResult(outcomes), nil
}

type ExitWithdrawalPayload struct {
	AgentAuthPayload
	OperationId uint64 `json:"operation_id"`
}

// ExitWithdrawal godoc
// @Summary Close a withdraw cycle
// @Description Marks the open withdraw operation finished.
// @Accept json
// @Produce json
// @Param payload body ExitWithdrawalPayload true "Exit Withdrawal Payload"
// @Success 202 "Operation finished"
// @Failure 403 {object} types.Error "Already finished"
// @Router /v1/agent/exit-withdrawal [post]
func (h *Handler) ExitWithdrawal(request *http.Request) (*Result, *types.Error) {
	payload, err := parseJSONPayload[ExitWithdrawalPayload](request)
	if err != nil {
		return nil, err
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}

	timer := metrics.StartAgentPhaseTimer("exit_withdrawal")
	exitErr := h.services.ExitWithdrawal(request.Context(), payload.toRequest(), payload.OperationId)
	if exitErr != nil {
		timer(metrics.Error)
		return nil, exitErr
	}
	timer(metrics.Success)
	return &Result{Status: http.StatusAccepted}, nil
}

type ClaimPayload struct {
	AgentAuthPayload
	ClaimId string `json:"claim_id"`
}

// Claim godoc
// @Summary Claim a matured unbonding ticket
// @Description Consumes a matured ticket and pays it out of the vault's pending claim balance.
// @Accept json
// @Produce json
// @Param payload body ClaimPayload true "Claim Payload"
// @Success 200 {object} PublicResponse[model.UnbondingTicketDocument]
// @Failure 400 {object} types.Error "No claimable ticket"
// @Router /v1/agent/claim [post]
func (h *Handler) Claim(request *http.Request) (*Result, *types.Error) {
	payload, err := parseJSONPayload[ClaimPayload](request)
	if err != nil {
		return nil, err
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}
	if payload.ClaimId == "" {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "claim_id is required")
	}

	timer := metrics.StartAgentPhaseTimer("claim")
	ticket, claimErr := h.services.Claim(request.Context(), payload.toRequest(), payload.ClaimId)
	if claimErr != nil {
		timer(metrics.Error)
		return nil, claimErr
	}
	timer(metrics.Success)
	return NewResult(ticket), nil
}

// TakeOut godoc
// @Summary Take out a matured emergency ticket
// @Description Consumes a matured emergency ticket and pays it out of the vault's emergency unbonding balance.
// @Accept json
// @Produce json
// @Param payload body ClaimPayload true "Take Out Payload"
// @Success 200 {object} PublicResponse[model.UnbondingTicketDocument]
// @Failure 400 {object} types.Error "No claimable ticket"
// @Router /v1/agent/take-out [post]
func (h *Handler) TakeOut(request *http.Request) (*Result, *types.Error) {
	payload, err := parseJSONPayload[ClaimPayload](request)
	if err != nil {
		return nil, err
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}
	if payload.ClaimId == "" {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "claim_id is required")
	}

	timer := metrics.StartAgentPhaseTimer("take_out")
	ticket, takeOutErr := h.services.TakeOut(request.Context(), payload.toRequest(), payload.ClaimId)
	if takeOutErr != nil {
		timer(metrics.Error)
		return nil, takeOutErr
	}
	timer(metrics.Success)
	return NewResult(ticket), nil
}

type SimulateTransferResponse struct {
	TotalFeeUsd uint64 `json:"total_fee_usd"`
}

// SimulateTransfer godoc
// @Summary Quote the fee of a prospective transfer
// @Description Read-only aggregate fee quote across the selected adapters. No signature, no nonce, no writes.
// @Produce json
// @Param token query string true "Token symbol"
// @Param amounts query string true "Comma separated amounts in micro USD"
// @Param to_chain_ids query string true "Comma separated destination chain ids"
// @Param adapter_types query string true "Comma separated adapter types"
// @Success 200 {object} PublicResponse[SimulateTransferResponse]
// @Failure 400 {object} types.Error "Invalid legs"
// @Router /v1/agent/simulate-transfer [get]
func (h *Handler) SimulateTransfer(request *http.Request) (*Result, *types.Error) {
	token, err := parseStringQuery(request, "token")
	if err != nil {
		return nil, err
	}
	amounts, err := parseUint64ListQuery(request, "amounts")
	if err != nil {
		return nil, err
	}
	toChainIds, err := parseUint64ListQuery(request, "to_chain_ids")
	if err != nil {
		return nil, err
	}
	adapterTypesRaw, err := parseStringQuery(request, "adapter_types")
	if err != nil {
		return nil, err
	}
	adapterTypes := strings.Split(adapterTypesRaw, ",")

	totalFee, feeErr := h.services.SimulateTransfer(request.Context(), token, amounts, toChainIds, adapterTypes)
	if feeErr != nil {
		return nil, feeErr
	}
	return NewResult(SimulateTransferResponse{TotalFeeUsd: totalFee}), nil
}
