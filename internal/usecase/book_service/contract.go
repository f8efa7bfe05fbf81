package book_service

import (
	"context"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
)

// TripRepository интерфейс репозитория поездок
type TripRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Trip, error)
	AppendService(ctx context.Context, tripID, serviceID int64) error
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Service, error)
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
