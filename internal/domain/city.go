package domain

// City is a uniquely named location referenced by trips and services.
// Cities are shared reference data: created on first use, never updated.
type City struct {
	ID   int64
	Name string
}
