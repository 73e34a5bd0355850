package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/thirdfi/fund-orchestrator/internal/config"
	"github.com/thirdfi/fund-orchestrator/internal/services"
	"github.com/thirdfi/fund-orchestrator/internal/types"
)

type Handler struct {
	config   *config.Config
	services *services.Services
}

type PublicResponse[T any] struct {
	Data T `json:"data"`
}

type Result struct {
	Data   interface{}
	Status int
}

// NewResult returns a successful result, with default status code 200
func NewResult[T any](data T) *Result {
	res := &PublicResponse[T]{Data: data}
	return &Result{Data: res, Status: http.StatusOK}
}

func New(
	ctx context.Context, cfg *config.Config, services *services.Services,
) (*Handler, error) {
	return &Handler{
		config:   cfg,
		services: services,
	}, nil
}

func parseJSONPayload[T any](request *http.Request) (*T, *types.Error) {
	payload := new(T)
	if err := json.NewDecoder(request.Body).Decode(payload); err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	return payload, nil
}

func parseUint64Query(request *http.Request, name string) (uint64, *types.Error) {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return 0, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, name+" query parameter is required",
		)
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid "+name+" query parameter",
		)
	}
	return value, nil
}

func parseStringQuery(request *http.Request, name string) (string, *types.Error) {
	value := request.URL.Query().Get(name)
	if value == "" {
		return "", types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, name+" query parameter is required",
		)
	}
	return value, nil
}

func parseUint64ListQuery(request *http.Request, name string) ([]uint64, *types.Error) {
	raw, err := parseStringQuery(request, name)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(raw, ",")
	values := make([]uint64, 0, len(parts))
	for _, part := range parts {
		value, parseErr := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if parseErr != nil {
			return nil, types.NewErrorWithMsg(
				http.StatusBadRequest, types.BadRequest, "invalid "+name+" query parameter",
			)
		}
		values = append(values, value)
	}
	return values, nil
}

func parseUint64Param(request *http.Request, raw, name string) (uint64, *types.Error) {
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid "+name+" path parameter",
		)
	}
	return value, nil
}
