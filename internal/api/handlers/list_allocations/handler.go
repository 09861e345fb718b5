package list_allocations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers"
	"github.com/dmtrv/BRS-AvailabilityService/internal/service/allocations"
	"github.com/dmtrv/BRS-AvailabilityService/internal/service/allocations/models"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidWindow     = "некорректный формат границ окна, ожидается RFC 3339"
	msgInvalidParams     = "некорректные параметры запроса"
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

// Handle GET /api/v1/resources/{resourceId}/allocations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resourceIDStr := vars["resourceId"]

	resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/allocations - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	window, err := handlers.ParseOptionalWindowQuery(r)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/allocations - Invalid window: resource_id=%d, error=%v", resourceID, err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListAllocationsRequest{
		ResourceID: resourceID,
		Window:     window,
	})
	if err != nil {
		switch {
		case errors.Is(err, allocations.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/allocations - Invalid params: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /resources/{id}/allocations - Failed to list allocations: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/allocations - Allocations retrieved successfully: resource_id=%d, count=%d",
		resourceID, len(result.Allocations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
