package list_services

import (
	"errors"
	"net/http"

	"github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers"
	"github.com/Obaraten64/TravelPlanningRestService/internal/api/middleware"
	"github.com/Obaraten64/TravelPlanningRestService/internal/service/catalog"
)

const (
	msgNoServices = "No services in the city"
)

type Handler struct {
	catalogService CatalogService
	logger         Logger
}

func NewHandler(catalogService CatalogService, logger Logger) *Handler {
	return &Handler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// Handle GET /services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	services, err := h.catalogService.ListForUser(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, catalog.ErrNoServices) {
			h.logger.Warn("GET /services - No services available: user=%d", user.ID)
			handlers.RespondBadRequest(w, msgNoServices)
			return
		}
		h.logger.Error("GET /services - Failed to list services: user=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Listed %d services for user=%d", len(services), user.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewServiceViews(services))
}
