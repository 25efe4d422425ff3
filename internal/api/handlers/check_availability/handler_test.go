package check_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/m04kA/SMC-VoiceBooking/internal/usecase/check_availability"
	"github.com/m04kA/SMC-VoiceBooking/pkg/logger"
	"github.com/m04kA/SMC-VoiceBooking/pkg/ptr"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *checkAvailability.Request) *checkAvailability.Response {
	args := m.Called(ctx, req)
	return args.Get(0).(*checkAvailability.Response)
}

func TestHandler_Handle(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &checkAvailability.Request{
		FacilityID:      "pickle_x_mysore",
		Date:            "2025-06-01",
		StartTime:       "14:00",
		DurationMinutes: 60,
		NumberOfCourts:  3,
	}).Return(&checkAvailability.Response{
		Success:              true,
		Available:            false,
		FreeCourts:           []int{},
		ReasonIfNotAvailable: ptr.Ptr("Only 0 courts available, but 3 requested"),
	}).Once()

	h := NewHandler(uc, logger.Nop())
	body := `{"facility_id":"pickle_x_mysore","date":"2025-06-01","start_time":"14:00","duration_minutes":60,"number_of_courts":3}`
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/functions/check_availability", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, true, got["success"])
	assert.Equal(t, false, got["available"])
	assert.Equal(t, []interface{}{}, got["free_courts"])
	assert.Equal(t, "Only 0 courts available, but 3 requested", got["reason_if_not_available"])
	assert.NotContains(t, got, "error")
	uc.AssertExpectations(t)
}

func TestHandler_InvalidBody(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/functions/check_availability", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
