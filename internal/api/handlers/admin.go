package handlers

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// EmergencyWithdraw godoc
// @Summary Pull every staking pool on a ledger out and pause its vault
// @Accept json
// @Produce json
// @Param chainId path int true "Chain id"
// @Success 202 "Emergency unbonding started"
// @Failure 404 {object} types.Error "Vault not found"
// @Router /v1/admin/vault/{chainId}/emergency-withdraw [post]
func (h *Handler) EmergencyWithdraw(request *http.Request) (*Result, *types.Error) {
	chainId, err := parseUint64Param(request, chi.URLParam(request, "chainId"), "chainId")
	if err != nil {
		return nil, err
	}

	if withdrawErr := h.services.EmergencyWithdraw(request.Context(), chainId); withdrawErr != nil {
		return nil, withdrawErr
	}
	return &Result{Status: http.StatusAccepted}, nil
}

type CompositionChangePayload struct {
	Tokens  []string `json:"tokens"`
	PercBps []uint64 `json:"perc_bps"`
}

// Reinvest godoc
// @Summary Unpause a vault and restore its composition
// @Description Rejected while emergency or unbonded tickets are still outstanding.
// @Accept json
// @Produce json
// @Param chainId path int true "Chain id"
// @Param payload body CompositionChangePayload true "New composition"
// @Success 202 "Vault unpaused"
// @Failure 403 {object} types.Error "Emergency unbonding not finished"
// @Router /v1/admin/vault/{chainId}/reinvest [post]
func (h *Handler) Reinvest(request *http.Request) (*Result, *types.Error) {
	chainId, err := parseUint64Param(request, chi.URLParam(request, "chainId"), "chainId")
	if err != nil {
		return nil, err
	}
	payload, err := parseJSONPayload[CompositionChangePayload](request)
	if err != nil {
		return nil, err
	}

	if reinvestErr := h.services.Reinvest(request.Context(), chainId, payload.Tokens, payload.PercBps); reinvestErr != nil {
		return nil, reinvestErr
	}
	return &Result{Status: http.StatusAccepted}, nil
}

// Rebalance godoc
// @Summary Replace a vault's composition table
// @Accept json
// @Produce json
// @Param chainId path int true "Chain id"
// @Param payload body CompositionChangePayload true "New composition"
// @Success 202 "Composition replaced"
// @Failure 404 {object} types.Error "Vault not found"
// @Router /v1/admin/vault/{chainId}/rebalance [post]
func (h *Handler) Rebalance(request *http.Request) (*Result, *types.Error) {
	chainId, err := parseUint64Param(request, chi.URLParam(request, "chainId"), "chainId")
	if err != nil {
		return nil, err
	}
	payload, err := parseJSONPayload[CompositionChangePayload](request)
	if err != nil {
		return nil, err
	}

	if rebalanceErr := h.services.Rebalance(request.Context(), chainId, payload.Tokens, payload.PercBps); rebalanceErr != nil {
		return nil, rebalanceErr
	}
	return &Result{Status: http.StatusAccepted}, nil
}

type AmountPayload struct {
	AmountUsd uint64 `json:"amount_usd"`
}

// AdminClaim godoc
// @Summary Settle a matured pending claim out of the pool
// @Accept json
// @Produce json
// @Param chainId path int true "Chain id"
// @Param payload body AmountPayload true "Amount in micro USD"
// @Success 202 "Claim settled"
// @Failure 400 {object} types.Error "Insufficient pool or pending claim balance"
// @Router /v1/admin/vault/{chainId}/claim [post]
func (h *Handler) AdminClaim(request *http.Request) (*Result, *types.Error) {
	chainId, err := parseUint64Param(request, chi.URLParam(request, "chainId"), "chainId")
	if err != nil {
		return nil, err
	}
	payload, err := parseJSONPayload[AmountPayload](request)
	if err != nil {
		return nil, err
	}

	if claimErr := h.services.ClaimByAdmin(request.Context(), chainId, payload.AmountUsd); claimErr != nil {
		return nil, claimErr
	}
	return &Result{Status: http.StatusAccepted}, nil
}

// ReleaseEmergency godoc
// @Summary Pay out matured emergency value
// @Accept json
// @Produce json
// @Param chainId path int true "Chain id"
// @Param payload body AmountPayload true "Amount in micro USD"
// @Success 202 "Emergency value released"
// @Failure 400 {object} types.Error "Insufficient emergency balance"
// @Router /v1/admin/vault/{chainId}/release-emergency [post]
func (h *Handler) ReleaseEmergency(request *http.Request) (*Result, *types.Error) {
	chainId, err := parseUint64Param(request, chi.URLParam(request, "chainId"), "chainId")
	if err != nil {
		return nil, err
	}
	payload, err := parseJSONPayload[AmountPayload](request)
	if err != nil {
		return nil, err
	}

	if releaseErr := h.services.ReleaseEmergency(request.Context(), chainId, payload.AmountUsd); releaseErr != nil {
		return nil, releaseErr
	}
	return &Result{Status: http.StatusAccepted}, nil
}

type CompositionTokenPayload struct {
	Action        string   `json:"action"`
	ChainId       uint64   `json:"chain_id"`
	Token         string   `json:"token"`
	TargetPercBps []uint64 `json:"target_perc_bps"`
}

// ChangeCompositionToken godoc
// @Summary Add or remove a composition token, or reset the target percentages
// @Description Action is one of add, remove or set-perc. The supplied percentages must cover the resulting table and sum to 10000 basis points.
// @Accept json
// @Produce json
// @Param payload body CompositionTokenPayload true "Composition change"
// @Success 202 "Composition updated"
// @Failure 400 {object} types.Error "Unknown action or inconsistent percentages"
// @Router /v1/admin/composition/token [post]
func (h *Handler) ChangeCompositionToken(request *http.Request) (*Result, *types.Error) {
	payload, err := parseJSONPayload[CompositionTokenPayload](request)
	if err != nil {
		return nil, err
	}

	ctx := request.Context()
	var changeErr *types.Error
	switch payload.Action {
	case "add":
		changeErr = h.services.AddToken(ctx, payload.ChainId, payload.Token, payload.TargetPercBps)
	case "remove":
		changeErr = h.services.RemoveToken(ctx, payload.ChainId, payload.Token, payload.TargetPercBps)
	case "set-perc":
		changeErr = h.services.SetTokenCompositionTargetPerc(ctx, payload.TargetPercBps)
	default:
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "action must be one of add, remove, set-perc",
		)
	}
	if changeErr != nil {
		return nil, changeErr
	}
	return &Result{Status: http.StatusAccepted}, nil
}

type SetPeersPayload struct {
	ChainIds []uint64 `json:"chain_ids"`
	Peers    []string `json:"peers"`
}

// SetAdapterPeers godoc
// @Summary Install peer endpoints for a relay adapter
// @Accept json
// @Produce json
// @Param type path string true "Adapter type"
// @Param payload body SetPeersPayload true "Peer table"
// @Success 202 "Peers installed"
// @Failure 400 {object} types.Error "Unknown adapter type or mismatched arrays"
// @Router /v1/admin/adapters/{type}/peers [post]
func (h *Handler) SetAdapterPeers(request *http.Request) (*Result, *types.Error) {
	adapterType, typeErr := types.AdapterTypeFromString(chi.URLParam(request, "type"))
	if typeErr != nil {
		return nil, types.NewError(http.StatusBadRequest, types.BadRequest, typeErr)
	}
	payload, err := parseJSONPayload[SetPeersPayload](request)
	if err != nil {
		return nil, err
	}
	if len(payload.ChainIds) == 0 || len(payload.ChainIds) != len(payload.Peers) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "chain_ids and peers must be non-empty and equal length",
		)
	}

	adapter, adapterErr := h.services.Adapters.Get(adapterType)
	if adapterErr != nil {
		return nil, adapterErr
	}
	if setErr := adapter.SetPeers(request.Context(), payload.ChainIds, payload.Peers); setErr != nil {
		return nil, setErr
	}
	return &Result{Status: http.StatusAccepted}, nil
}

type RegisterAccountPayload struct {
	Owner      string   `json:"owner"`
	Threshold  int      `json:"threshold"`
	PubKeysHex []string `json:"pub_keys_hex"`
}

// RegisterAccount godoc
// @Summary Register a threshold wallet account for an owner
// @Accept json
// @Produce json
// @Param payload body RegisterAccountPayload true "Account definition"
// @Success 202 "Account registered"
// @Failure 400 {object} types.Error "Invalid threshold or public keys"
// @Router /v1/admin/accounts [post]
func (h *Handler) RegisterAccount(request *http.Request) (*Result, *types.Error) {
	payload, err := parseJSONPayload[RegisterAccountPayload](request)
	if err != nil {
		return nil, err
	}

	if regErr := h.services.RegisterAccount(
		request.Context(), payload.Owner, payload.Threshold, payload.PubKeysHex,
	); regErr != nil {
		return nil, regErr
	}
	return &Result{Status: http.StatusAccepted}, nil
}
