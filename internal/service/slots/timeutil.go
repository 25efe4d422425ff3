package slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	"github.com/m04kA/SMC-VoiceBooking/pkg/types"
)

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(date string) (time.Time, error) {
	d, err := time.Parse(domain.DateFormat, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, ruleError(ErrInvalidDateFormat,
			fmt.Sprintf("Invalid date format: %s. Expected YYYY-MM-DD format.", date))
	}
	return d, nil
}

// ParseTime разбирает время в формате HH:MM
func ParseTime(value string) (types.TimeString, error) {
	t, err := types.NewTimeStringFromString(value)
	if err != nil {
		return "", ruleError(ErrInvalidTimeFormat,
			fmt.Sprintf("Invalid time format: %s. Expected HH:MM format.", value))
	}
	return t, nil
}

// Combine объединяет дату и время в момент времени в указанной таймзоне
func Combine(date, startTime string, loc *time.Location) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}

	t, err := ParseTime(startTime)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// EndInstant момент окончания: start + duration, без проверок границ
func EndInstant(start time.Time, durationMinutes int) time.Time {
	return start.Add(time.Duration(durationMinutes) * time.Minute)
}

// EndTime время окончания на настенных часах (HH:MM). После полуночи время переходит через 00:00
func EndTime(startTime string, durationMinutes int) (string, error) {
	start, err := ParseTime(startTime)
	if err != nil {
		return "", err
	}

	end, err := start.AddMinutesWrapped(durationMinutes)
	if err != nil {
		return "", err
	}
	return end.String(), nil
}

// WithinOperatingHours проверяет, что [start, end] лежит в часах работы; равенство границ допустимо
func WithinOperatingHours(start, end, open, close types.TimeString) error {
	if start.IsBefore(open) {
		return ruleError(ErrOpensLater, fmt.Sprintf("Facility opens at %s", open))
	}

	if end.IsAfter(close) {
		return ruleError(ErrClosesEarlier, fmt.Sprintf("Facility closes at %s", close))
	}

	return nil
}

// CheckOperatingHours проверяет слот (время начала + длительность) по часам работы площадки.
// Слот, переходящий через полночь, считается заканчивающимся после закрытия
func CheckOperatingHours(startTime string, durationMinutes int, facility *domain.Facility) error {
	start, err := ParseTime(startTime)
	if err != nil {
		return err
	}

	if start.IsBefore(facility.OpenTime) {
		return ruleError(ErrOpensLater, fmt.Sprintf("Facility opens at %s", facility.OpenTime))
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return ruleError(ErrClosesEarlier, fmt.Sprintf("Facility closes at %s", facility.CloseTime))
	}

	return WithinOperatingHours(start, end, facility.OpenTime, facility.CloseTime)
}
