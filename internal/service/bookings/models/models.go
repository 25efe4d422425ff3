package models

import (
	"time"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
)

// CourtBookingResponse событие одного корта
type CourtBookingResponse struct {
	EventID         string `json:"event_id"`
	CourtNumber     int    `json:"court_number"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	Date            string `json:"date"`       // "2025-01-15"
	StartTime       string `json:"start_time"` // "14:00"
	EndTime         string `json:"end_time"`   // "15:00"
	DurationMinutes int    `json:"duration_minutes"`
}

// FacilityBookingsResponse бронирования площадки за день
type FacilityBookingsResponse struct {
	FacilityID string                 `json:"facility_id"`
	Date       string                 `json:"date"`
	Count      int                    `json:"count"`
	Bookings   []CourtBookingResponse `json:"bookings"`
}

// CancelResponse результат отмены бронирования
type CancelResponse struct {
	BookingID         string   `json:"booking_id"`
	CancelledEventIDs []string `json:"cancelled_event_ids"`
	MissingEventIDs   []string `json:"missing_event_ids,omitempty"`
}

// FromDomainEvent конвертирует событие в ответ, время выводится в таймзоне площадок
func FromDomainEvent(e *domain.CourtEvent, loc *time.Location) CourtBookingResponse {
	start := e.Start.In(loc)
	end := e.End.In(loc)

	duration := e.DurationMinutes
	if duration <= 0 {
		duration = int(end.Sub(start).Minutes())
	}

	return CourtBookingResponse{
		EventID:         e.ID,
		CourtNumber:     e.CourtNumber,
		CustomerName:    e.CustomerName,
		CustomerPhone:   e.CustomerPhone,
		Date:            start.Format("2006-01-02"),
		StartTime:       start.Format("15:04"),
		EndTime:         end.Format("15:04"),
		DurationMinutes: duration,
	}
}

// FromDomainEventList конвертирует список событий площадки за день
func FromDomainEventList(facilityID, date string, events []*domain.CourtEvent, loc *time.Location) *FacilityBookingsResponse {
	bookings := make([]CourtBookingResponse, 0, len(events))
	for _, e := range events {
		bookings = append(bookings, FromDomainEvent(e, loc))
	}

	return &FacilityBookingsResponse{
		FacilityID: facilityID,
		Date:       date,
		Count:      len(bookings),
		Bookings:   bookings,
	}
}
