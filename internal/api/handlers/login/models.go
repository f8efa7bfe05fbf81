package login

import "errors"

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate проверяет обязательные поля. Возвращается первая ошибка.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return errors.New("Write down your email!")
	}
	if r.Password == "" {
		return errors.New("Write down your password!")
	}
	return nil
}

// TokenResponse HTTP response model
type TokenResponse struct {
	Token string `json:"token"`
}
