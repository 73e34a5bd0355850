package handlers

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// GetOperation godoc
// @Summary Fetch an operation by its global id
// @Produce json
// @Param id path int true "Operation id"
// @Success 200 {object} PublicResponse[model.OperationDocument]
// @Failure 404 {object} types.Error "Operation not found"
// @Router /v1/operations/{id} [get]
func (h *Handler) GetOperation(request *http.Request) (*Result, *types.Error) {
	id, err := parseUint64Param(request, chi.URLParam(request, "id"), "id")
	if err != nil {
		return nil, err
	}

	op, opErr := h.services.GetOperationById(request.Context(), id)
	if opErr != nil {
		return nil, opErr
	}
	return NewResult(op), nil
}

// GetLastOperation godoc
// @Summary Fetch the owner's most recent operation
// @Produce json
// @Param owner query string true "Owner identifier"
// @Success 200 {object} PublicResponse[model.OperationDocument]
// @Failure 404 {object} types.Error "Owner has no operations"
// @Router /v1/operations/last [get]
func (h *Handler) GetLastOperation(request *http.Request) (*Result, *types.Error) {
	owner, err := parseStringQuery(request, "owner")
	if err != nil {
		return nil, err
	}

	op, opErr := h.services.GetLastOperationByOwner(request.Context(), owner)
	if opErr != nil {
		return nil, opErr
	}
	return NewResult(op), nil
}

type AgentNonceResponse struct {
	Nonce uint64 `json:"nonce"`
}

// GetAgentNonce godoc
// @Summary Fetch the caller's last accepted agent nonce
// @Description The next valid agent request must carry this value plus one.
// @Produce json
// @Param owner query string true "Owner identifier"
// @Success 200 {object} PublicResponse[AgentNonceResponse]
// @Router /v1/agent/nonce [get]
func (h *Handler) GetAgentNonce(request *http.Request) (*Result, *types.Error) {
	owner, err := parseStringQuery(request, "owner")
	if err != nil {
		return nil, err
	}

	nonce, nonceErr := h.services.GetAgentNonce(request.Context(), owner)
	if nonceErr != nil {
		return nil, nonceErr
	}
	return NewResult(AgentNonceResponse{Nonce: nonce}), nil
}

type WithdrawPercResponse struct {
	PercBp uint64 `json:"perc_bp"`
}

// GetWithdrawPerc godoc
// @Summary Quote the pool percentage a share amount is worth
// @Produce json
// @Param owner query string true "Owner identifier"
// @Param share_amount query int true "Share amount to price"
// @Success 200 {object} PublicResponse[WithdrawPercResponse]
// @Failure 400 {object} types.Error "Amount exceeds balance"
// @Router /v1/withdraw-perc [get]
func (h *Handler) GetWithdrawPerc(request *http.Request) (*Result, *types.Error) {
	owner, err := parseStringQuery(request, "owner")
	if err != nil {
		return nil, err
	}
	shareAmount, err := parseUint64Query(request, "share_amount")
	if err != nil {
		return nil, err
	}

	percBp, percErr := h.services.GetWithdrawPerc(request.Context(), owner, shareAmount)
	if percErr != nil {
		return nil, percErr
	}
	return NewResult(WithdrawPercResponse{PercBp: percBp}), nil
}
