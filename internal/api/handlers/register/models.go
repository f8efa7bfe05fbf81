package register

import "errors"

// RegistrationRequest HTTP request model
type RegistrationRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate проверяет обязательные поля. Возвращается первая ошибка.
func (r *RegistrationRequest) Validate() error {
	if r.Email == "" {
		return errors.New("Write down your email!")
	}
	if r.Password == "" {
		return errors.New("Write down your password!")
	}
	if r.Role == "" {
		return errors.New("Write down your role!")
	}
	return nil
}
