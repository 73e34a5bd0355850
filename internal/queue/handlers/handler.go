package handlers

import (
	"github.com/thirdfi/fund-orchestrator/internal/services"
)

type QueueHandler struct {
	Services *services.Services
}

func NewQueueHandler(services *services.Services) *QueueHandler {
	return &QueueHandler{
		Services: services,
	}
}
