package list_resources

import (
	"net/http"

	"github.com/dmtrv/BRS-AvailabilityService/internal/api/handlers"
)

type Handler struct {
	service ResourceService
	logger  Logger
}

func NewHandler(service ResourceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// По умолчанию отдаем только бронируемые ресурсы (capacity > 0)
	onlyBookable := r.URL.Query().Get("all") != "true"

	result, err := h.service.List(r.Context(), onlyBookable)
	if err != nil {
		h.logger.Error("GET /resources - Failed to list resources: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /resources - Resources retrieved successfully: count=%d", len(result.Resources))
	handlers.RespondJSON(w, http.StatusOK, result)
}
