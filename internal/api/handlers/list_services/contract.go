package list_services

import (
	"context"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
)

// CatalogService интерфейс сервиса каталога услуг
type CatalogService interface {
	ListForUser(ctx context.Context, userID int64) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
