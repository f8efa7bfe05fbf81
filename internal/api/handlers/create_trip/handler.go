package create_trip

import (
	"errors"
	"net/http"

	"github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers"
	"github.com/Obaraten64/TravelPlanningRestService/internal/api/middleware"
	createTrip "github.com/Obaraten64/TravelPlanningRestService/internal/usecase/create_trip"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTravelTime  = "Choose the date and time for your travel!"
	msgTripAlreadyExists  = "You have already planned your travel"
	msgUnknownCity        = "We cannot pick you up from your city or deliver you to your destination"
)

type Handler struct {
	useCase CreateTripUseCase
	logger  Logger
}

func NewHandler(useCase CreateTripUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /travel/create
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req TravelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /travel/create - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("POST /travel/create - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(user.ID)
	if err != nil {
		h.logger.Warn("POST /travel/create - Failed to parse travel time %q: %v", req.TravelTime, err)
		handlers.RespondBadRequest(w, msgInvalidTravelTime)
		return
	}

	trip, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createTrip.ErrTripAlreadyExists):
			h.logger.Warn("POST /travel/create - Trip already planned: user=%d", user.ID)
			handlers.RespondBadRequest(w, msgTripAlreadyExists)

		case errors.Is(err, createTrip.ErrUnknownCity):
			h.logger.Warn("POST /travel/create - Unknown city: user=%d, departure=%q, destination=%q",
				user.ID, req.Departure, req.Destination)
			handlers.RespondBadRequest(w, msgUnknownCity)

		case errors.Is(err, createTrip.ErrInvalidInput):
			h.logger.Warn("POST /travel/create - Invalid input: user=%d, error=%v", user.ID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /travel/create - Failed to create trip: user=%d, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /travel/create - Trip created: id=%d, user=%d", trip.ID, user.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.NewTripView(trip))
}
