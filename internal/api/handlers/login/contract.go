package login

import (
	"context"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
)

// UsersService интерфейс сервиса учетных записей
type UsersService interface {
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// TokenIssuer интерфейс выпуска access-токенов
type TokenIssuer interface {
	Issue(userID int64, email, role string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
