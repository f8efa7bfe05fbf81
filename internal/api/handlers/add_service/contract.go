package add_service

import (
	"context"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
)

// CatalogService интерфейс сервиса каталога услуг
type CatalogService interface {
	Add(ctx context.Context, name, cityName string) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
