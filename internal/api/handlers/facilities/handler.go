package facilities

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VoiceBooking/internal/api/handlers"
)

const msgFacilityNotFound = "facility not found"

type Handler struct {
	directory FacilityDirectory
	logger    Logger
}

func NewHandler(directory FacilityDirectory, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// HandleList GET /facilities
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list := h.directory.All()

	h.logger.Info("GET /facilities - Facilities listed: count=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, FromFacilities(list))
}

// HandleGet GET /facilities/{facilityId}
// Query params: include_prompt (опционально) - добавить системный промпт ассистента
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	facilityID := mux.Vars(r)["facilityId"]

	facility, err := h.directory.GetByID(facilityID)
	if err != nil {
		h.logger.Warn("GET /facilities/{id} - Facility not found: facility_id=%s", facilityID)
		handlers.RespondNotFound(w, msgFacilityNotFound)
		return
	}

	includePrompt, _ := strconv.ParseBool(r.URL.Query().Get("include_prompt"))

	h.logger.Info("GET /facilities/{id} - Facility retrieved: facility_id=%s", facilityID)
	handlers.RespondJSON(w, http.StatusOK, FromFacility(facility, includePrompt))
}
