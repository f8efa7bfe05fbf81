package login

import (
	"errors"
	"net/http"

	"github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers"
	"github.com/Obaraten64/TravelPlanningRestService/internal/service/users"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCredentials = "Invalid email or password"
)

type Handler struct {
	usersService UsersService
	tokenIssuer  TokenIssuer
	logger       Logger
}

func NewHandler(usersService UsersService, tokenIssuer TokenIssuer, logger Logger) *Handler {
	return &Handler{
		usersService: usersService,
		tokenIssuer:  tokenIssuer,
		logger:       logger,
	}
}

// Handle POST /user/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /user/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("POST /user/login - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	user, err := h.usersService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			h.logger.Warn("POST /user/login - Invalid credentials: email=%s", req.Email)
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /user/login - Failed to authenticate: email=%s, error=%v", req.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	tokenString, err := h.tokenIssuer.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		h.logger.Error("POST /user/login - Failed to issue token: user=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /user/login - User authenticated: id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusOK, TokenResponse{Token: tokenString})
}
