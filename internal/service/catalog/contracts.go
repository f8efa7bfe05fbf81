package catalog

import (
	"context"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetAll(ctx context.Context) ([]*domain.Service, error)
	GetByCityID(ctx context.Context, cityID int64) ([]*domain.Service, error)
	GetByNameAndCity(ctx context.Context, name string, cityID int64) (*domain.Service, error)
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
}

// CityRepository интерфейс справочника городов
type CityRepository interface {
	GetOrCreate(ctx context.Context, name string) (*domain.City, error)
}

// TripRepository интерфейс репозитория поездок
type TripRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Trip, error)
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
