package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VoiceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VoiceBooking/internal/service/bookings"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgNotFound         = "booking not found"
	msgNotConfigured    = "calendar not configured"

	msgPartiallyCancelled = "booking was cancelled partially"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
// bookingId это booking_id из ответа create_booking (id событий через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.service.Cancel(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %q", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrNotConfigured):
			h.logger.Warn("DELETE /bookings/{id} - Calendar not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotConfigured)

		case result != nil && len(result.CancelledEventIDs) > 0:
			h.logger.Error("DELETE /bookings/{id} - Booking partially cancelled: booking_id=%s, cancelled=%v, error=%v",
				bookingID, result.CancelledEventIDs, err)
			handlers.RespondJSON(w, http.StatusInternalServerError, PartialCancelResponse{
				Code:              http.StatusInternalServerError,
				Message:           msgPartiallyCancelled,
				CancelledEventIDs: result.CancelledEventIDs,
			})

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to cancel booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking cancelled successfully: booking_id=%s, events=%d",
		bookingID, len(result.CancelledEventIDs))
	handlers.RespondJSON(w, http.StatusOK, result)
}
