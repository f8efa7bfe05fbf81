package book_service

import "errors"

var (
	// ErrNoActiveTrip возвращается, когда у пользователя нет запланированной поездки
	ErrNoActiveTrip = errors.New("book_service: no planned trip")

	// ErrUnknownService возвращается, когда услуга с указанным именем не найдена
	ErrUnknownService = errors.New("book_service: unknown service")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_service: internal error")
)
