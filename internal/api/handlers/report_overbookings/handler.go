package report_overbookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers"
	reportOverbookings "github.com/dmtrv/BRS-AvailabilityService/internal/usecase/report_overbookings"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgMissingWindow     = "отсутствуют параметры start и end"
	msgInvalidWindow     = "некорректный формат границ окна, ожидается RFC 3339"
	msgInvalidRange      = "начало окна должно быть не позже конца"
	msgResourceNotFound  = "ресурс не найден"
)

type Handler struct {
	useCase ReportOverbookingsUseCase
	logger  Logger
}

func NewHandler(useCase ReportOverbookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/overbookings?start=&end=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resourceIDStr := vars["resourceId"]

	resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/overbookings - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	window, err := handlers.ParseWindowQuery(r)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/overbookings - Invalid window: %v", err)
		if errors.Is(err, handlers.ErrMissingWindow) {
			handlers.RespondBadRequest(w, msgMissingWindow)
		} else {
			handlers.RespondBadRequest(w, msgInvalidWindow)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), &reportOverbookings.Request{
		ResourceID: resourceID,
		Window:     window,
	})
	if err != nil {
		switch {
		case errors.Is(err, reportOverbookings.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/overbookings - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, reportOverbookings.ErrInvalidRange):
			h.logger.Warn("GET /resources/{id}/overbookings - Invalid range: resource_id=%d", resourceID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, reportOverbookings.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/overbookings - Invalid input: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /resources/{id}/overbookings - Failed to report overbookings: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/overbookings - Report built: resource_id=%d, overbooked_periods=%d",
		resourceID, len(result.Overbookings))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
