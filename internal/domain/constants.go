package domain

// Default booking rule values used when a facility omits them
const (
	DefaultMinimumDuration   = 60
	DefaultDurationMultiples = 60
	DefaultFixedSlots        = true
)

// Deployment defaults
const (
	DefaultTimezone          = "Asia/Kolkata"
	DefaultOpenOnReadFailure = true
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Structured metadata keys stored on every calendar event
const (
	MetaFacilityID      = "facility_id"
	MetaCourtNumber     = "court_number"
	MetaFacilityName    = "facility_name"
	MetaCustomerName    = "customer_name"
	MetaCustomerPhone   = "customer_phone"
	MetaBookingDate     = "booking_date"
	MetaStartTime       = "start_time"
	MetaDurationMinutes = "duration_minutes"
)
