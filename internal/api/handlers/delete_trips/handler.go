package delete_trips

import (
	"net/http"

	"github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers"
	deleteTrips "github.com/Obaraten64/TravelPlanningRestService/internal/usecase/delete_trips"
)

const (
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	useCase DeleteTripsUseCase
	logger  Logger
}

func NewHandler(useCase DeleteTripsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /travel/delete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeleteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /travel/delete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	deleted, err := h.useCase.Execute(r.Context(), &deleteTrips.Request{
		Departure:   req.Departure,
		Destination: req.Destination,
	})
	if err != nil {
		h.logger.Error("DELETE /travel/delete - Failed to delete trips: departure=%q, destination=%q, error=%v",
			req.Departure, req.Destination, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /travel/delete - Deleted %d trips (departure=%q, destination=%q)",
		len(deleted), req.Departure, req.Destination)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewTripViews(deleted))
}
