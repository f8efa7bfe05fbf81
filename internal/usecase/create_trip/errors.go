package create_trip

import "errors"

var (
	// ErrTripAlreadyExists возвращается, когда у пользователя уже есть поездка
	ErrTripAlreadyExists = errors.New("create_trip: trip already planned")

	// ErrUnknownCity возвращается, когда город отправления или назначения
	// отсутствует в справочнике
	ErrUnknownCity = errors.New("create_trip: unknown city")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_trip: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_trip: internal error")
)
