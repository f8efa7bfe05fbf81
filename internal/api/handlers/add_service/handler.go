package add_service

import (
	"errors"
	"net/http"

	"github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers"
	"github.com/Obaraten64/TravelPlanningRestService/internal/service/catalog"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgServiceAlreadyExists = "The service already exists"
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

// Handle POST /services/add
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services/add - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("POST /services/add - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	svc, err := h.catalogService.Add(r.Context(), req.Name, req.City)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceAlreadyExists) {
			h.logger.Warn("POST /services/add - Service already exists: name=%q, city=%q", req.Name, req.City)
			handlers.RespondBadRequest(w, msgServiceAlreadyExists)
			return
		}
		h.logger.Error("POST /services/add - Failed to add service: name=%q, city=%q, error=%v",
			req.Name, req.City, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /services/add - Service added: id=%d, name=%q, city=%q", svc.ID, svc.Name, svc.CityName)
	handlers.RespondJSON(w, http.StatusCreated, handlers.NewServiceView(svc))
}
