package handlers

import (
	"net/http"

	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// GetComposition godoc
// @Summary Fetch the fund's target composition table
// @Produce json
// @Success 200 {object} PublicResponse[[]model.TargetCompositionEntry]
// @Router /v1/composition [get]
func (h *Handler) GetComposition(request *http.Request) (*Result, *types.Error) {
	entries, err := h.services.GetCompositionPerc(request.Context())
	if err != nil {
		return nil, err
	}
	return NewResult(entries), nil
}
