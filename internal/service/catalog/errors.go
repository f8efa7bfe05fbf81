package catalog

import "errors"

var (
	// ErrNoServices возвращается, когда список доступных услуг пуст
	ErrNoServices = errors.New("no services in the city")

	// ErrServiceAlreadyExists возвращается, когда услуга с такой парой (имя, город) уже есть
	ErrServiceAlreadyExists = errors.New("service already exists")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog service: internal error")
)
