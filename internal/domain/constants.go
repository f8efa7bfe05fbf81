package domain

// Time format constants
const (
	// TravelTimeFormat wire format for trip travel time, e.g. "2024-12-12T12:12:12"
	TravelTimeFormat = "2006-01-02T15:04:05"
)
