package calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
)

const (
	// PopupReminderMinutes напоминание о бронировании за час
	PopupReminderMinutes = 60

	endTimeLayout = "15:04"
)

// Summary заголовок события корта
func Summary(e *domain.CourtEvent) string {
	return fmt.Sprintf("Court %d Booking - %s", e.CourtNumber, e.CustomerName)
}

// Description текст события с данными клиента и бронирования
func Description(e *domain.CourtEvent) string {
	return fmt.Sprintf(`Customer Name: %s
Phone: %s
Facility: %s (%s)
Court Number: %d
Date: %s
Start Time: %s
End Time: %s
Duration: %d minutes`,
		e.CustomerName,
		e.CustomerPhone,
		e.FacilityName, e.FacilityID,
		e.CourtNumber,
		e.Date,
		e.StartTime,
		e.End.Format(endTimeLayout),
		e.DurationMinutes,
	)
}

// Metadata структурированные метки события.
// По facility_id и court_number ищется занятость корта, остальные нужны для восстановления события
func Metadata(e *domain.CourtEvent) map[string]string {
	return map[string]string{
		domain.MetaFacilityID:      e.FacilityID,
		domain.MetaCourtNumber:     strconv.Itoa(e.CourtNumber),
		domain.MetaFacilityName:    e.FacilityName,
		domain.MetaCustomerName:    e.CustomerName,
		domain.MetaCustomerPhone:   e.CustomerPhone,
		domain.MetaBookingDate:     e.Date,
		domain.MetaStartTime:       e.StartTime,
		domain.MetaDurationMinutes: strconv.Itoa(e.DurationMinutes),
	}
}

// FromMetadata восстанавливает событие по меткам и интервалу
func FromMetadata(id string, meta map[string]string, start, end time.Time) (*domain.CourtEvent, error) {
	facilityID := meta[domain.MetaFacilityID]
	if facilityID == "" {
		return nil, fmt.Errorf("%w: event %s has no %s", ErrInvalidEvent, id, domain.MetaFacilityID)
	}

	court, err := strconv.Atoi(meta[domain.MetaCourtNumber])
	if err != nil || court < 1 {
		return nil, fmt.Errorf("%w: event %s has invalid %s %q", ErrInvalidEvent, id, domain.MetaCourtNumber, meta[domain.MetaCourtNumber])
	}

	// Длительность необязательна, по умолчанию берется из интервала
	duration, err := strconv.Atoi(meta[domain.MetaDurationMinutes])
	if err != nil {
		duration = int(end.Sub(start).Minutes())
	}

	return &domain.CourtEvent{
		ID:              id,
		FacilityID:      facilityID,
		FacilityName:    meta[domain.MetaFacilityName],
		CourtNumber:     court,
		CustomerName:    meta[domain.MetaCustomerName],
		CustomerPhone:   meta[domain.MetaCustomerPhone],
		Start:           start,
		End:             end,
		Date:            meta[domain.MetaBookingDate],
		StartTime:       meta[domain.MetaStartTime],
		DurationMinutes: duration,
	}, nil
}

// Validate проверяет обязательные поля события перед записью
func Validate(e *domain.CourtEvent) error {
	if e == nil {
		return fmt.Errorf("%w: event is nil", ErrInvalidEvent)
	}
	if e.FacilityID == "" {
		return fmt.Errorf("%w: facility id is required", ErrInvalidEvent)
	}
	if e.CourtNumber < 1 {
		return fmt.Errorf("%w: court number must be positive", ErrInvalidEvent)
	}
	if !e.End.After(e.Start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidEvent)
	}
	return nil
}
