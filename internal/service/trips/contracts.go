package trips

import (
	"context"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
)

// TripRepository интерфейс репозитория поездок
type TripRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Trip, error)
	GetAll(ctx context.Context) ([]*domain.Trip, error)
	Delete(ctx context.Context, tripID int64) error
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
