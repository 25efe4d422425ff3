package health

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-VoiceBooking/internal/api/handlers"
)

type Handler struct {
	facilities   FacilityDirectory
	opts         Options
	timeProvider TimeProvider
}

func NewHandler(facilities FacilityDirectory, opts Options) *Handler {
	return &Handler{
		facilities:   facilities,
		opts:         opts,
		timeProvider: &RealTimeProvider{},
	}
}

// HandleHealth GET /health
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	calendarStatus := statusNotConfigured
	if h.opts.CalendarConfigured {
		calendarStatus = statusActive
	}

	publisherStatus := statusDisabled
	if h.opts.EventsEnabled {
		publisherStatus = statusActive
	}

	handlers.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: h.timeProvider.Now().UTC().Format(time.RFC3339),
		Services: Services{
			FacilityService:  statusActive,
			CalendarService:  calendarStatus,
			CalendarProvider: h.opts.CalendarProvider,
			EventPublisher:   publisherStatus,
			FacilitiesLoaded: h.facilities.Len(),
		},
		Configuration: Configuration{
			OpenAIConfigured:   h.opts.OpenAIConfigured,
			CalendarConfigured: h.opts.CalendarConfigured,
		},
	})
}

// HandleRoot GET /
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, RootResponse{
		Message: "AI Voice Assistant Backend API",
		Status:  "running",
		Version: h.opts.Version,
		Endpoints: map[string]string{
			"voice_webhook":     "/voice/webhook",
			"voice_status":      "/voice/status",
			"realtime_ws":       "/realtime",
			"realtime_status":   "/realtime/status",
			"function_call":     "/api/v1/functions/call",
			"facility_bookings": "/api/v1/facilities/{facilityId}/bookings",
			"cancel_booking":    "/api/v1/bookings/{bookingId}",
			"health":            "/health",
			"facilities":        "/facilities",
		},
	})
}
