package domain

// Service is a bookable offering (hotel, park, ...) located in exactly one city.
// The pair (Name, CityID) is unique within the catalog.
type Service struct {
	ID     int64
	Name   string
	CityID int64

	// Denormalized city name for presentation
	CityName string
}
