package function_call

import (
	"net/http"

	"github.com/m04kA/SMC-VoiceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VoiceBooking/internal/service/functions"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgMissingFunctionName = "function_name is required"
)

type Handler struct {
	dispatcher FunctionDispatcher
	logger     Logger
}

func NewHandler(dispatcher FunctionDispatcher, logger Logger) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle POST /api/v1/functions/call
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req FunctionCallRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /functions/call - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.FunctionName == "" {
		h.logger.Warn("POST /functions/call - Missing function name")
		handlers.RespondBadRequest(w, msgMissingFunctionName)
		return
	}

	result := h.dispatcher.Call(r.Context(), req.FunctionName, req.Arguments, req.FacilityID)

	h.logger.Info("POST /functions/call - Function executed: function_name=%s", req.FunctionName)
	handlers.RespondJSON(w, http.StatusOK, FunctionCallResponse{
		FunctionName: req.FunctionName,
		Result:       result,
	})
}

// HandleDefinitions GET /api/v1/functions
func (h *Handler) HandleDefinitions(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, functions.Definitions())
}
