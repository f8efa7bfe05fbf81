package list_trips

import (
	"context"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
)

// TripsService интерфейс сервиса поездок
type TripsService interface {
	ListAll(ctx context.Context) ([]*domain.Trip, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
