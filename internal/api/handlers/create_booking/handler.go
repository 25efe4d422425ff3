package create_booking

import (
	"net/http"

	"github.com/m04kA/SMC-VoiceBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-VoiceBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-VoiceBooking/pkg/ptr"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/functions/create_booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req createBooking.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /functions/create_booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result := h.useCase.Execute(r.Context(), &req)

	if !result.Success {
		h.logger.Warn("POST /functions/create_booking - Booking rejected: facility_id=%s, date=%s, start_time=%s, courts=%v, error=%s",
			req.FacilityID, req.Date, req.StartTime, req.CourtNumbers, ptr.Deref(result.Error, ""))
	} else {
		h.logger.Info("POST /functions/create_booking - Booking created: facility_id=%s, date=%s, start_time=%s, courts=%v, booking_id=%s",
			req.FacilityID, req.Date, req.StartTime, req.CourtNumbers, ptr.Deref(result.BookingID, ""))
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
