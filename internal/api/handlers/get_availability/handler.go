package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers"
	getAvailability "github.com/dmtrv/BRS-AvailabilityService/internal/usecase/get_availability"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgMissingWindow     = "отсутствуют параметры start и end"
	msgInvalidWindow     = "некорректный формат границ окна, ожидается RFC 3339"
	msgInvalidRange      = "начало окна должно быть не позже конца"
	msgResourceNotFound  = "ресурс не найден"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/availability?start=&end=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resourceIDStr := vars["resourceId"]

	resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	window, err := handlers.ParseWindowQuery(r)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid window: %v", err)
		if errors.Is(err, handlers.ErrMissingWindow) {
			handlers.RespondBadRequest(w, msgMissingWindow)
		} else {
			handlers.RespondBadRequest(w, msgInvalidWindow)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		ResourceID: resourceID,
		Window:     window,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/availability - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, getAvailability.ErrInvalidRange):
			h.logger.Warn("GET /resources/{id}/availability - Invalid range: resource_id=%d", resourceID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/availability - Invalid input: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /resources/{id}/availability - Failed to get availability: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/availability - Availability retrieved: resource_id=%d, remaining=%d, overbooked=%v",
		resourceID, result.RemainingSpaces, result.Overbooked)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
