package voice_webhook

import (
	"net/http"

	"github.com/m04kA/SMC-VoiceBooking/internal/api/handlers"
)

type Handler struct {
	facilities FacilityDirectory
	logger     Logger
}

func NewHandler(facilities FacilityDirectory, logger Logger) *Handler {
	return &Handler{
		facilities: facilities,
		logger:     logger,
	}
}

// HandleIncoming POST /voice/webhook
// Провайдер всегда получает TwiML со статусом 200, иначе звонок обрывается без объявления
func (h *Handler) HandleIncoming(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Error("POST /voice/webhook - Failed to parse form: %v", err)
		handlers.RespondXML(w, http.StatusOK, errorTwiML())
		return
	}

	call := IncomingCall{
		CallSid:    r.PostForm.Get("CallSid"),
		From:       r.PostForm.Get("From"),
		To:         r.PostForm.Get("To"),
		CallStatus: r.PostForm.Get("CallStatus"),
	}
	h.logger.Info("POST /voice/webhook - Incoming call: sid=%s, from=%s, to=%s, status=%s",
		call.CallSid, call.From, call.To, call.CallStatus)

	facility, err := h.facilities.GetByPhone(call.To)
	if err != nil {
		h.logger.Warn("POST /voice/webhook - No facility found for phone number: %s", call.To)
		handlers.RespondXML(w, http.StatusOK, notConfiguredTwiML())
		return
	}

	h.logger.Info("POST /voice/webhook - Call routed to facility: %s (%s)", facility.Name, facility.ID)
	handlers.RespondXML(w, http.StatusOK, greetingTwiML(facility.Name))
}

// HandleVerify GET /voice/webhook
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, VerifyResponse{
		Status:  "ok",
		Message: "Voice webhook endpoint is active",
	})
}

// HandleStatus GET /voice/status
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ids := h.facilities.IDs()
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{
		Status:           "active",
		FacilitiesLoaded: len(ids),
		FacilityIDs:      ids,
	})
}
