package users

import "errors"

var (
	// ErrUserAlreadyExists возвращается, когда пользователь с таким email уже зарегистрирован
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidRole возвращается при регистрации с неизвестной ролью
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users service: internal error")
)
