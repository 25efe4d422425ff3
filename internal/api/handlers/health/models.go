package health

// Options что подключено в текущем деплое
type Options struct {
	Version            string
	CalendarProvider   string
	CalendarConfigured bool
	OpenAIConfigured   bool
	EventsEnabled      bool
}

// HealthResponse HTTP response model для /health
type HealthResponse struct {
	Status        string        `json:"status"`
	Timestamp     string        `json:"timestamp"`
	Services      Services      `json:"services"`
	Configuration Configuration `json:"configuration"`
}

// Services состояние внутренних сервисов
type Services struct {
	FacilityService  string `json:"facility_service"`
	CalendarService  string `json:"calendar_service"`
	CalendarProvider string `json:"calendar_provider,omitempty"`
	EventPublisher   string `json:"event_publisher"`
	FacilitiesLoaded int    `json:"facilities_loaded"`
}

// Configuration какие внешние интеграции настроены
type Configuration struct {
	OpenAIConfigured   bool `json:"openai_configured"`
	CalendarConfigured bool `json:"calendar_configured"`
}

// RootResponse HTTP response model для /
type RootResponse struct {
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

const (
	statusActive        = "active"
	statusDisabled      = "disabled"
	statusNotConfigured = "not_configured"
)
