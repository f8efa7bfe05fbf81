package create_trip

import (
	"context"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
)

// TripRepository интерфейс репозитория поездок
type TripRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Trip, error)
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
}

// CityRepository интерфейс справочника городов
type CityRepository interface {
	GetByName(ctx context.Context, name string) (*domain.City, error)
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
