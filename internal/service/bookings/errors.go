package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда ни одно событие бронирования не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("bookings: facility not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrNotConfigured возвращается, когда хранилище календаря не настроено
	ErrNotConfigured = errors.New("bookings: calendar not configured")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
