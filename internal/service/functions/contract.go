package functions

import (
	"context"

	"github.com/m04kA/SMC-VoiceBooking/internal/usecase/check_availability"
	"github.com/m04kA/SMC-VoiceBooking/internal/usecase/create_booking"
)

// CheckAvailabilityUseCase интерфейс use case проверки доступности
type CheckAvailabilityUseCase interface {
	Execute(ctx context.Context, req *check_availability.Request) *check_availability.Response
}

// CreateBookingUseCase интерфейс use case создания бронирования
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *create_booking.Request) *create_booking.Response
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
