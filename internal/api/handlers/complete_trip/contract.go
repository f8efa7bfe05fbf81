package complete_trip

import "context"

// TripsService интерфейс сервиса поездок
type TripsService interface {
	Complete(ctx context.Context, userID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
