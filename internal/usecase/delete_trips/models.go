package delete_trips

// Request входные данные административного массового удаления поездок.
// Имена городов не обязаны существовать в справочнике:
// несуществующее имя просто не находит ни одной поездки.
type Request struct {
	Departure   string
	Destination string
}
