package create_trip

import (
	"errors"
	"time"

	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
	createTrip "github.com/Obaraten64/TravelPlanningRestService/internal/usecase/create_trip"
)

// TravelRequest HTTP request model
type TravelRequest struct {
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
	TravelTime  string `json:"travel_time"` // "2024-12-12T12:12:12"
}

// Validate проверяет обязательные поля. Возвращается первая ошибка.
func (r *TravelRequest) Validate() error {
	if r.Departure == "" {
		return errors.New("Write down the city of departure!")
	}
	if r.Destination == "" {
		return errors.New("Write down the destination city!")
	}
	if r.TravelTime == "" {
		return errors.New("Choose the date and time for your travel!")
	}
	return nil
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом времени)
func (r *TravelRequest) ToUseCaseRequest(userID int64) (*createTrip.Request, error) {
	travelTime, err := time.Parse(domain.TravelTimeFormat, r.TravelTime)
	if err != nil {
		return nil, err
	}

	return &createTrip.Request{
		UserID:      userID,
		Departure:   r.Departure,
		Destination: r.Destination,
		TravelTime:  travelTime,
	}, nil
}
