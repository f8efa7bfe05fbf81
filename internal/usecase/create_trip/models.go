package create_trip

import "time"

// Request входные данные операции создания поездки.
// Города указываются именами и обязаны существовать в справочнике.
type Request struct {
	UserID      int64
	Departure   string
	Destination string
	TravelTime  time.Time
}
