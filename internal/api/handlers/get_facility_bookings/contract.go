package get_facility_bookings

import (
	"context"

	"github.com/m04kA/SMC-VoiceBooking/internal/service/bookings/models"
)

type BookingService interface {
	ListByFacility(ctx context.Context, facilityID, date string) (*models.FacilityBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
