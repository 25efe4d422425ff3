package create_booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrCalendarNotConfigured возвращается, когда запись в календарь не настроена
	ErrCalendarNotConfigured = errors.New("create_booking: calendar writer is not configured")

	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("create_booking: facility not found")

	// ErrInvalidInput возвращается при некорректных данных клиента
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidSlot слот нарушает правила площадки
	ErrInvalidSlot = errors.New("create_booking: invalid slot")

	// ErrInvalidCourts некорректные номера кортов
	ErrInvalidCourts = errors.New("create_booking: invalid court numbers")

	// ErrOutsideHours бронирование вне часов работы
	ErrOutsideHours = errors.New("create_booking: outside operating hours")

	// ErrCourtUnavailable запрошенный корт занят
	ErrCourtUnavailable = errors.New("create_booking: court is not available")

	// ErrNoEventsCreated ни одно событие календаря не создано
	ErrNoEventsCreated = errors.New("create_booking: failed to create calendar events")

	// ErrPartialWrite создана только часть событий
	ErrPartialWrite = errors.New("create_booking: partial write")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// CourtUnavailableError корт занят на запрошенное время
type CourtUnavailableError struct {
	Court int
}

func (e *CourtUnavailableError) Error() string {
	return fmt.Sprintf("Court %d is not available at the requested time", e.Court)
}

func (e *CourtUnavailableError) Unwrap() error {
	return ErrCourtUnavailable
}

// PartialWriteError часть кортов забронирована, часть нет
type PartialWriteError struct {
	BookedCourts []int
	FailedCourts []int
	BookingIDs   []string
	RolledBack   bool
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("Failed to book courts %s (booked courts %s)",
		joinCourts(e.FailedCourts), joinCourts(e.BookedCourts))
}

func (e *PartialWriteError) Unwrap() error {
	return ErrPartialWrite
}

// unexpectedError непредвиденный сбой, текст которого показывается звонящему как есть
type unexpectedError struct {
	cause string
}

func (e *unexpectedError) Error() string {
	return e.cause
}

func (e *unexpectedError) Unwrap() error {
	return ErrInternal
}

func joinCourts(courts []int) string {
	parts := make([]string, 0, len(courts))
	for _, c := range courts {
		parts = append(parts, strconv.Itoa(c))
	}
	return strings.Join(parts, ", ")
}
