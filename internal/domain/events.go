package domain

// Routing keys of published booking events
const (
	RKBookingCreated = "booking.created"
)

// BookingCreated is published after every court of a booking has been written
type BookingCreated struct {
	BookingID       string   `json:"booking_id"`
	FacilityID      string   `json:"facility_id"`
	CourtNumbers    []int    `json:"court_numbers"`
	EventIDs        []string `json:"event_ids"`
	Date            string   `json:"date"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	DurationMinutes int      `json:"duration_minutes"`
	CustomerName    string   `json:"customer_name"`
	CustomerPhone   string   `json:"customer_phone"`
	Start           int64    `json:"start"` // unix seconds
	End             int64    `json:"end"`
}

// RKBookingCancelled is the routing key of BookingCancelled
const RKBookingCancelled = "booking.cancelled"

// BookingCancelled is published after the events of a booking have been removed
type BookingCancelled struct {
	BookingID   string   `json:"booking_id"`
	EventIDs    []string `json:"event_ids"`
	CancelledAt int64    `json:"cancelled_at"` // unix seconds
}
