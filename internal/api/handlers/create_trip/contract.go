package create_trip

import (
	"context"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
	createTrip "github.com/Obaraten64/TravelPlanningRestService/internal/usecase/create_trip"
)

// CreateTripUseCase интерфейс use case создания поездки
type CreateTripUseCase interface {
	Execute(ctx context.Context, req *createTrip.Request) (*domain.Trip, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
