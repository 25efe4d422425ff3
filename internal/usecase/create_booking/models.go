package create_booking

import "time"

// Request запрос на создание бронирования
type Request struct {
	FacilityID      string `json:"facility_id"`
	Date            string `json:"date"`             // YYYY-MM-DD
	StartTime       string `json:"start_time"`       // HH:MM, 24 часа
	DurationMinutes int    `json:"duration_minutes"` // Длительность в минутах
	Name            string `json:"name"`             // Имя клиента
	PhoneNumber     string `json:"phone_number"`     // Телефон клиента
	CourtNumbers    []int  `json:"court_numbers"`    // Номера кортов, с 1
}

// Response результат создания бронирования
type Response struct {
	Success   bool                   `json:"success"`
	BookingID *string                `json:"booking_id,omitempty"` // ID событий через запятую
	Message   *string                `json:"message,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Error     *string                `json:"error,omitempty"`
}

// Config параметры use case
type Config struct {
	Location              *time.Location // Таймзона площадок
	RollbackPartialWrites bool           // Удалять созданные события при частичной записи
}

const (
	outcomeBooked        = "booked"
	outcomeRejected      = "rejected"
	outcomeUnavailable   = "unavailable"
	outcomeNotFound      = "not_found"
	outcomeNotConfigured = "not_configured"
	outcomePartial       = "partial"
	outcomeWriteFailed   = "write_failed"
	outcomeError         = "error"
)
