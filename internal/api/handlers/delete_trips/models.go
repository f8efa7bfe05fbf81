package delete_trips

// DeleteRequest HTTP request model.
// Имена городов не обязаны существовать: несуществующее имя
// просто не находит поездок для удаления.
type DeleteRequest struct {
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
}
