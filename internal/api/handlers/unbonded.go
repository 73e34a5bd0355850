package handlers

import (
	"net/http"

	"github.com/thirdfi/fund-orchestrator/internal/types"
)

// GetUnbonded godoc
// @Summary Aggregate unbonding view for an owner
// @Description Sums waiting and unbonded value across every staking pool. WaitForTs is the latest maturity among waiting tickets.
// @Produce json
// @Param owner query string true "Owner identifier"
// @Success 200 {object} PublicResponse[types.UnbondedView]
// @Router /v1/unbonded [get]
func (h *Handler) GetUnbonded(request *http.Request) (*Result, *types.Error) {
	owner, err := parseStringQuery(request, "owner")
	if err != nil {
		return nil, err
	}

	view, viewErr := h.services.GetAllUnbonded(request.Context(), owner)
	if viewErr != nil {
		return nil, viewErr
	}
	return NewResult(view), nil
}

// GetUnbondedPools godoc
// @Summary Per pool unbonding view for an owner
// @Produce json
// @Param owner query string true "Owner identifier"
// @Success 200 {object} PublicResponse[[]services.PoolUnbondedView]
// @Router /v1/unbonded/pools [get]
func (h *Handler) GetUnbondedPools(request *http.Request) (*Result, *types.Error) {
	owner, err := parseStringQuery(request, "owner")
	if err != nil {
		return nil, err
	}

	views, viewErr := h.services.GetPoolsUnbonded(request.Context(), owner)
	if viewErr != nil {
		return nil, viewErr
	}
	return NewResult(views), nil
}
