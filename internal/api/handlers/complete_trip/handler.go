package complete_trip

import (
	"net/http"

	"github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers"
	"github.com/Obaraten64/TravelPlanningRestService/internal/api/middleware"
)

const (
	msgCompleted    = "What a beautiful trip"
	msgNoActiveTrip = "You haven't planned a travel"
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

// Handle POST /travel/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	completed, err := h.tripsService.Complete(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("POST /travel/complete - Failed to complete trip: user=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	// Отсутствие поездки - не доменная ошибка, а ожидаемый отрицательный ответ
	if !completed {
		h.logger.Warn("POST /travel/complete - No planned trip: user=%d", user.ID)
		handlers.RespondBadRequest(w, msgNoActiveTrip)
		return
	}

	h.logger.Info("POST /travel/complete - Trip completed: user=%d", user.ID)
	handlers.RespondMessage(w, http.StatusOK, msgCompleted)
}
