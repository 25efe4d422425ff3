package get_facility_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VoiceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VoiceBooking/internal/service/bookings"
)

const (
	msgMissingDate   = "query parameter date is required"
	msgInvalidDate   = "date must be in YYYY-MM-DD format"
	msgNotFound      = "facility not found"
	msgNotConfigured = "calendar not configured"
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

// Handle GET /api/v1/facilities/{facilityId}/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID := mux.Vars(r)["facilityId"]

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /facilities/{id}/bookings - Missing date: facility_id=%s", facilityID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.service.ListByFacility(r.Context(), facilityID, date)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/bookings - Facility not found: facility_id=%s", facilityID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/bookings - Invalid date: facility_id=%s, date=%s", facilityID, date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, bookings.ErrNotConfigured):
			h.logger.Warn("GET /facilities/{id}/bookings - Calendar not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotConfigured)

		default:
			h.logger.Error("GET /facilities/{id}/bookings - Failed to get bookings: facility_id=%s, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/bookings - Bookings retrieved successfully: facility_id=%s, date=%s, count=%d",
		facilityID, date, result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
