package register

import (
	"errors"
	"net/http"

	"github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers"
	"github.com/Obaraten64/TravelPlanningRestService/internal/service/users"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUserAlreadyExists  = "Such a user already exists!"
	msgWrongRole          = "Wrong role provided"
	msgRegistered         = "Successfully registered, your email is your username"
)

type Handler struct {
	usersService UsersService
	logger       Logger
}

func NewHandler(usersService UsersService, logger Logger) *Handler {
	return &Handler{
		usersService: usersService,
		logger:       logger,
	}
}

// Handle POST /user/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegistrationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /user/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("POST /user/register - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	user, err := h.usersService.Register(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserAlreadyExists):
			h.logger.Warn("POST /user/register - User already exists: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgUserAlreadyExists)

		case errors.Is(err, users.ErrInvalidRole):
			h.logger.Warn("POST /user/register - Wrong role: %q", req.Role)
			handlers.RespondBadRequest(w, msgWrongRole)

		default:
			h.logger.Error("POST /user/register - Failed to register user: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /user/register - User registered: id=%d, email=%s", user.ID, user.Email)
	handlers.RespondMessage(w, http.StatusOK, msgRegistered)
}
