package check_availability

import (
	"net/http"

	"github.com/m04kA/SMC-VoiceBooking/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-VoiceBooking/internal/usecase/check_availability"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/functions/check_availability
// Бизнес-результат (в т.ч. отказ) возвращается с 200 в поле success,
// ошибкой HTTP считается только неразборчивое тело
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req checkAvailability.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /functions/check_availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result := h.useCase.Execute(r.Context(), &req)

	h.logger.Info("POST /functions/check_availability - facility_id=%s, date=%s, start_time=%s, success=%t, available=%t, free_courts=%v",
		req.FacilityID, req.Date, req.StartTime, result.Success, result.Available, result.FreeCourts)
	handlers.RespondJSON(w, http.StatusOK, result)
}
