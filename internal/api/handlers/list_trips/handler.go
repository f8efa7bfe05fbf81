package list_trips

import (
	"net/http"

	"github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers"
)

type Handler struct {
	tripsService TripsService
	logger       Logger
}

func NewHandler(tripsService TripsService, logger Logger) *Handler {
	return &Handler{
		tripsService: tripsService,
		logger:       logger,
	}
}

// Handle GET /travel/all
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trips, err := h.tripsService.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /travel/all - Failed to list trips: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /travel/all - Listed %d trips", len(trips))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewTripViews(trips))
}
