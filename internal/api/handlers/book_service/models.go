package book_service

import "errors"

// ServiceRequest HTTP request model
type ServiceRequest struct {
	Name string `json:"name"`
}

// Validate проверяет обязательные поля
func (r *ServiceRequest) Validate() error {
	if r.Name == "" {
		return errors.New("Write down the name of service!")
	}
	return nil
}
