package delete_trips

import (
	"context"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
)

// TripRepository интерфейс репозитория поездок
type TripRepository interface {
	GetAllByDepartureName(ctx context.Context, cityName string) ([]*domain.Trip, error)
	GetAllByDestinationName(ctx context.Context, cityName string) ([]*domain.Trip, error)
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
