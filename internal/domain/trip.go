package domain

import "time"

// Trip is a single user's planned journey between two cities at a point in time.
// A user owns at most one trip; the constraint is enforced by a unique index
// on trips.user_id.
type Trip struct {
	ID          int64
	UserID      int64
	Departure   City
	Destination City
	TravelTime  time.Time

	// Booked services in booking order. Always non-nil after loading:
	// a trip without bookings carries an empty slice, not nil.
	Services []Service
}

// HasDestination reports whether the trip references a destination city.
// A zero destination can only come from malformed state.
func (t *Trip) HasDestination() bool {
	return t.Destination.ID != 0
}
