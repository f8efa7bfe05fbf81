package book_service

// Request входные данные операции бронирования услуги.
// Услуга ищется по имени во всем каталоге, а не только в городе назначения.
type Request struct {
	UserID      int64
	ServiceName string
}
