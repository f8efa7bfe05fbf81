package add_service

import "errors"

// AddServiceRequest HTTP request model
type AddServiceRequest struct {
	Name string `json:"name"`
	City string `json:"city"`
}

// Validate проверяет обязательные поля. Возвращается первая ошибка.
func (r *AddServiceRequest) Validate() error {
	if r.Name == "" {
		return errors.New("Write down the name of service!")
	}
	if r.City == "" {
		return errors.New("Write down the name of the city where the service is located")
	}
	return nil
}
