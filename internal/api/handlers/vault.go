package handlers

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// GetVault godoc
// @Summary Fetch a vault's balances and composition
// @Produce json
// @Param chainId path int true "Chain id"
// @Success 200 {object} PublicResponse[model.VaultDocument]
// @Failure 404 {object} types.Error "Vault not found"
// @Router /v1/vault/{chainId} [get]
func (h *Handler) GetVault(request *http.Request) (*Result, *types.Error) {
	chainId, err := parseUint64Param(request, chi.URLParam(request, "chainId"), "chainId")
	if err != nil {
		return nil, err
	}

	vault, vaultErr := h.services.GetVault(request.Context(), chainId)
	if vaultErr != nil {
		return nil, vaultErr
	}
	return NewResult(vault), nil
}

// GetPoolAtNonce godoc
// @Summary Fetch the vault pool snapshot recorded at a given nonce
// @Produce json
// @Param chainId path int true "Chain id"
// @Param nonce query int true "Vault nonce"
// @Success 200 {object} PublicResponse[model.VaultNonceDocument]
// @Failure 404 {object} types.Error "No snapshot at that nonce"
// @Router /v1/vault/{chainId}/pool-at-nonce [get]
func (h *Handler) GetPoolAtNonce(request *http.Request) (*Result, *types.Error) {
	chainId, err := parseUint64Param(request, chi.URLParam(request, "chainId"), "chainId")
	if err != nil {
		return nil, err
	}
	nonce, err := parseUint64Query(request, "nonce")
	if err != nil {
		return nil, err
	}

	snapshot, snapErr := h.services.GetPoolAtNonce(request.Context(), chainId, nonce)
	if snapErr != nil {
		return nil, snapErr
	}
	return NewResult(snapshot), nil
}
