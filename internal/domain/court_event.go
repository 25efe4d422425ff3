package domain

import "time"

// CourtEvent is a single-court booking as stored in the calendar.
// FacilityID and CourtNumber are stored as structured metadata, not parsed from text
type CourtEvent struct {
	ID              string
	FacilityID      string
	FacilityName    string
	CourtNumber     int
	CustomerName    string
	CustomerPhone   string
	Start           time.Time
	End             time.Time
	Date            string // YYYY-MM-DD as requested
	StartTime       string // HH:MM as requested
	DurationMinutes int
}

// Overlaps returns true if the event intersects [start, end).
// Touching intervals do not overlap
func (e *CourtEvent) Overlaps(start, end time.Time) bool {
	return e.Start.Before(end) && e.End.After(start)
}
