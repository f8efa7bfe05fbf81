package book_service

import (
	"errors"
	"net/http"

	"github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers"
	"github.com/Obaraten64/TravelPlanningRestService/internal/api/middleware"
	bookService "github.com/Obaraten64/TravelPlanningRestService/internal/usecase/book_service"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNoActiveTrip       = "You haven't planned a travel"
	msgUnknownService     = "There is no service with that name"
)

type Handler struct {
	useCase BookServiceUseCase
	logger  Logger
}

func NewHandler(useCase BookServiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /services/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("POST /services/book - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	trip, err := h.useCase.Execute(r.Context(), &bookService.Request{
		UserID:      user.ID,
		ServiceName: req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookService.ErrNoActiveTrip):
			h.logger.Warn("POST /services/book - No planned trip: user=%d", user.ID)
			handlers.RespondBadRequest(w, msgNoActiveTrip)

		case errors.Is(err, bookService.ErrUnknownService):
			h.logger.Warn("POST /services/book - Unknown service: %q", req.Name)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, bookService.ErrInvalidInput):
			h.logger.Warn("POST /services/book - Invalid input: user=%d, error=%v", user.ID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /services/book - Failed to book service: user=%d, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services/book - Service %q booked: user=%d, trip=%d", req.Name, user.ID, trip.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewTripView(trip))
}
