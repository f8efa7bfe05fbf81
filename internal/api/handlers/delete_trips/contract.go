package delete_trips

import (
	"context"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
	deleteTrips "github.com/Obaraten64/TravelPlanningRestService/internal/usecase/delete_trips"
)

// DeleteTripsUseCase интерфейс use case массового удаления поездок
type DeleteTripsUseCase interface {
	Execute(ctx context.Context, req *deleteTrips.Request) ([]*domain.Trip, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
