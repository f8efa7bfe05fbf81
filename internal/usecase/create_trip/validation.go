package create_trip

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Departure == "" {
		return fmt.Errorf("%w: departure is required", ErrInvalidInput)
	}

	if req.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidInput)
	}

	if req.TravelTime.IsZero() {
		return fmt.Errorf("%w: travel time is required", ErrInvalidInput)
	}

	return nil
}
