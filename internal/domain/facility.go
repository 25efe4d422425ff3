package domain

import "github.com/m04kA/SMC-VoiceBooking/pkg/types"

// Facility represents a venue with numbered courts, operating hours and booking rules
type Facility struct {
	ID             string           `toml:"facility_id" json:"facility_id"`
	Name           string           `toml:"facility_name" json:"facility_name"`
	PhoneNumber    string           `toml:"phone_number" json:"phone_number"`
	NumberOfCourts int              `toml:"number_of_courts" json:"number_of_courts"`
	OpenTime       types.TimeString `toml:"open_time" json:"open_time"`
	CloseTime      types.TimeString `toml:"close_time" json:"close_time"`
	BookingRules   BookingRules     `toml:"booking_rules" json:"booking_rules"`
	Pricing        Pricing          `toml:"pricing" json:"pricing"`
	Rentals        Rentals          `toml:"rentals" json:"rentals"`
	Coaching       Coaching         `toml:"coaching" json:"coaching"`
}

// BookingRules are the slot constraints of a facility. Zero values fall back to defaults
type BookingRules struct {
	MinimumDuration   int   `toml:"minimum_duration" json:"minimum_duration"`
	DurationMultiples int   `toml:"duration_multiples" json:"duration_multiples"`
	FixedSlots        *bool `toml:"fixed_slots" json:"fixed_slots"`
}

// MinDuration returns the minimum booking duration in minutes
func (r BookingRules) MinDuration() int {
	if r.MinimumDuration <= 0 {
		return DefaultMinimumDuration
	}
	return r.MinimumDuration
}

// Multiple returns the duration step in minutes
func (r BookingRules) Multiple() int {
	if r.DurationMultiples <= 0 {
		return DefaultDurationMultiples
	}
	return r.DurationMultiples
}

// FixedSlotsOnly returns true if bookings must start on an hour boundary
func (r BookingRules) FixedSlotsOnly() bool {
	if r.FixedSlots == nil {
		return DefaultFixedSlots
	}
	return *r.FixedSlots
}

// Pricing per-hour court prices
type Pricing struct {
	WeekdayPerHour int `toml:"weekday_per_hour" json:"weekday_per_hour"`
	WeekendPerHour int `toml:"weekend_per_hour" json:"weekend_per_hour"`
}

// Rentals equipment rental and sale prices
type Rentals struct {
	Racket      int `toml:"racket" json:"racket"`
	Shoes       int `toml:"shoes" json:"shoes"`
	ShuttleSale int `toml:"shuttle_sale" json:"shuttle_sale"`
}

// Coaching describes the coaching programme of a facility
type Coaching struct {
	Available bool     `toml:"available" json:"available"`
	Fee       int      `toml:"fee" json:"fee"`
	Timings   []string `toml:"timings" json:"timings"`
	AgeBelow  int      `toml:"age_below" json:"age_below"`
}
