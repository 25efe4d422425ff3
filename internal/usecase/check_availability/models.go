package check_availability

// Request запрос проверки доступности кортов
type Request struct {
	FacilityID      string `json:"facility_id"`
	Date            string `json:"date"`             // YYYY-MM-DD
	StartTime       string `json:"start_time"`       // HH:MM, 24 часа
	DurationMinutes int    `json:"duration_minutes"` // Длительность в минутах
	NumberOfCourts  int    `json:"number_of_courts"` // Сколько кортов нужно
}

// Response результат проверки доступности.
// FreeCourts всегда сериализуется массивом, даже пустым
type Response struct {
	Success              bool                   `json:"success"`
	Available            bool                   `json:"available"`
	FreeCourts           []int                  `json:"free_courts"`
	ReasonIfNotAvailable *string                `json:"reason_if_not_available,omitempty"`
	Data                 map[string]interface{} `json:"data,omitempty"`
	Error                *string                `json:"error,omitempty"`
}

const (
	outcomeAvailable   = "available"
	outcomeUnavailable = "unavailable"
	outcomeRejected    = "rejected"
	outcomeNotFound    = "not_found"
	outcomeError       = "error"
)
