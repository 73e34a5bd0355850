package handlers

import (
	"net/http"

	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// GetPrice godoc
// @Summary Fetch the oracle price of a token on a ledger
// @Produce json
// @Param chain_id query int true "Chain id"
// @Param token query string true "Token symbol"
// @Success 200 {object} PublicResponse[oracle.AssetPriceResponse]
// @Failure 404 {object} types.Error "No price for asset"
// @Router /v1/price [get]
func (h *Handler) GetPrice(request *http.Request) (*Result, *types.Error) {
	chainId, err := parseUint64Query(request, "chain_id")
	if err != nil {
		return nil, err
	}
	token, err := parseStringQuery(request, "token")
	if err != nil {
		return nil, err
	}

	price, priceErr := h.services.GetAssetPrice(request.Context(), chainId, token)
	if priceErr != nil {
		return nil, priceErr
	}
	return NewResult(price), nil
}
