package register

import (
	"context"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
)

// UsersService интерфейс сервиса учетных записей
type UsersService interface {
	Register(ctx context.Context, email, password, roleName string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
