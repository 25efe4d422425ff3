package realtime

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-VoiceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VoiceBooking/internal/service/functions"
)

const msgMissingFacilityID = "facility_id query parameter is required"

// Handler принимает WebSocket соединения /realtime
type Handler struct {
	upgrader   websocket.Upgrader
	facilities FacilityDirectory
	dispatcher FunctionDispatcher
	metrics    Metrics
	cfg        Config
	logger     Logger
}

func NewHandler(facilities FacilityDirectory, dispatcher FunctionDispatcher, metrics Metrics, cfg Config, logger Logger) *Handler {
	return &Handler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Клиенты - телефонные шлюзы и SDK, а не браузеры
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		facilities: facilities,
		dispatcher: dispatcher,
		metrics:    metrics,
		cfg:        cfg,
		logger:     logger,
	}
}

// Handle WS /realtime?facility_id=...&caller_number=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID := r.URL.Query().Get("facility_id")
	callerNumber := r.URL.Query().Get("caller_number")

	if facilityID == "" {
		h.logger.Warn("WS /realtime - Missing facility_id")
		handlers.RespondBadRequest(w, msgMissingFacilityID)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту ошибкой
		h.logger.Warn("WS /realtime - Upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	facility, err := h.facilities.GetByID(facilityID)
	if err != nil {
		h.logger.Warn("WS /realtime - Facility not found: facility_id=%s", facilityID)
		if h.cfg.WriteTimeout > 0 {
			_ = conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
		}
		_ = conn.WriteJSON(ErrorMessage{Type: TypeError, Error: "Facility not found: " + facilityID})
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		return
	}

	session := newSession(conn, facility, callerNumber, h.dispatcher, h.cfg, h.logger)

	h.metrics.RealtimeSessionOpened()
	defer h.metrics.RealtimeSessionClosed()

	h.logger.Info("WS /realtime - Session started: session_id=%s, facility_id=%s", session.ID(), facility.ID)

	if err := session.Run(r.Context()); err != nil {
		h.logger.Warn("WS /realtime - Session %s closed with error: %v", session.ID(), err)
	}

	h.logger.Info("WS /realtime - Session ended: session_id=%s", session.ID())
}

// HandleStatus GET /realtime/status
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{
		Status:             "active",
		Endpoint:           "/realtime",
		Protocol:           "WebSocket",
		SupportedFunctions: functions.Names(),
	})
}
