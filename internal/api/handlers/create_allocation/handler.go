package create_allocation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers"
	"github.com/dmtrv/BRS-AvailabilityService/internal/service/allocations"
)

const (
	msgInvalidResourceID  = "некорректный ID ресурса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректный формат границ окна, ожидается RFC 3339"
	msgResourceNotFound   = "ресурс не найден"
	msgInvalidInput       = "некорректные данные аллокации"
)

type Handler struct {
	service AllocationService
	logger  Logger
}

func NewHandler(service AllocationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/resources/{resourceId}/allocations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resourceIDStr := vars["resourceId"]

	resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /resources/{id}/allocations - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	var req CreateAllocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /resources/{id}/allocations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(resourceID)
	if err != nil {
		h.logger.Warn("POST /resources/{id}/allocations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, allocations.ErrResourceNotFound):
			h.logger.Warn("POST /resources/{id}/allocations - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, allocations.ErrInvalidInput):
			h.logger.Warn("POST /resources/{id}/allocations - Invalid input: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /resources/{id}/allocations - Failed to create allocation: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /resources/{id}/allocations - Allocation created successfully: allocation_id=%d, resource_id=%d",
		result.ID, resourceID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
