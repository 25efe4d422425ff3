package functions

// Имена функций, доступных ассистенту
const (
	CheckAvailability = "check_availability"
	CreateBooking     = "create_booking"
)

// Definition описание функции для модели в формате JSON Schema
type Definition struct {
	Type        string     `json:"type"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  Parameters `json:"parameters"`
}

// Parameters схема аргументов функции
type Parameters struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Property схема одного аргумента
type Property struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Items       *Property `json:"items,omitempty"`
}

var (
	checkAvailabilityRequired = []string{"facility_id", "date", "start_time", "duration_minutes", "number_of_courts"}
	createBookingRequired     = []string{"facility_id", "date", "start_time", "duration_minutes", "name", "phone_number", "court_numbers"}
)

// Definitions описания check_availability и create_booking
func Definitions() []Definition {
	return []Definition{
		{
			Type:        "function",
			Name:        CheckAvailability,
			Description: "Check availability of courts at a specific facility for a given date and time slot. Returns list of available courts.",
			Parameters: Parameters{
				Type: "object",
				Properties: map[string]Property{
					"facility_id": {
						Type:        "string",
						Description: "Unique identifier for the facility (e.g., 'pickle_x_mysore')",
					},
					"date": {
						Type:        "string",
						Description: "Date in YYYY-MM-DD format (e.g., '2024-12-25')",
					},
					"start_time": {
						Type:        "string",
						Description: "Start time in HH:MM format using 24-hour notation (e.g., '14:00' for 2 PM)",
					},
					"duration_minutes": {
						Type:        "integer",
						Description: "Duration in minutes, must be a multiple of 60 (e.g., 60, 120, 180)",
					},
					"number_of_courts": {
						Type:        "integer",
						Description: "Number of courts requested (e.g., 1, 2)",
					},
				},
				Required: checkAvailabilityRequired,
			},
		},
		{
			Type:        "function",
			Name:        CreateBooking,
			Description: "Create a booking for specific courts at a facility. This creates an event in the booking calendar.",
			Parameters: Parameters{
				Type: "object",
				Properties: map[string]Property{
					"facility_id": {
						Type:        "string",
						Description: "Unique identifier for the facility (e.g., 'pickle_x_mysore')",
					},
					"date": {
						Type:        "string",
						Description: "Date in YYYY-MM-DD format (e.g., '2024-12-25')",
					},
					"start_time": {
						Type:        "string",
						Description: "Start time in HH:MM format using 24-hour notation (e.g., '14:00' for 2 PM)",
					},
					"duration_minutes": {
						Type:        "integer",
						Description: "Duration in minutes, must be a multiple of 60 (e.g., 60, 120)",
					},
					"name": {
						Type:        "string",
						Description: "Customer's full name",
					},
					"phone_number": {
						Type:        "string",
						Description: "Customer's phone number with country code (e.g., '+919876543210')",
					},
					"court_numbers": {
						Type:        "array",
						Items:       &Property{Type: "integer"},
						Description: "List of court numbers to book (e.g., [1, 2])",
					},
				},
				Required: createBookingRequired,
			},
		},
	}
}

// Names имена поддерживаемых функций
func Names() []string {
	return []string{CheckAvailability, CreateBooking}
}
