package book_service

import (
	"context"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
	bookService "github.com/Obaraten64/TravelPlanningRestService/internal/usecase/book_service"
)

// BookServiceUseCase интерфейс use case бронирования услуги
type BookServiceUseCase interface {
	Execute(ctx context.Context, req *bookService.Request) (*domain.Trip, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
