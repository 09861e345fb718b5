package get_resource_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers"
	"github.com/dmtrv/BRS-AvailabilityService/internal/service/bookings"
	"github.com/dmtrv/BRS-AvailabilityService/internal/service/bookings/models"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidWindow     = "некорректный формат границ окна, ожидается RFC 3339"
	msgInvalidParams     = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resourceIDStr := vars["resourceId"]

	resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/bookings - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	// Окно пересечения опционально: без него отдаются все бронирования ресурса
	window, err := handlers.ParseOptionalWindowQuery(r)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/bookings - Invalid window: resource_id=%d, error=%v", resourceID, err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	result, err := h.service.GetResourceBookings(r.Context(), &models.GetResourceBookingsRequest{
		ResourceID:      resourceID,
		Window:          window,
		Status:          statusPtr,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/bookings - Invalid params: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /resources/{id}/bookings - Failed to get bookings: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/bookings - Bookings retrieved successfully: resource_id=%d, count=%d",
		resourceID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
