package create_booking

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

	createBooking "github.com/m04kA/SMC-VoiceBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-VoiceBooking/pkg/logger"
	"github.com/m04kA/SMC-VoiceBooking/pkg/ptr"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) *createBooking.Response {
	args := m.Called(ctx, req)
	return args.Get(0).(*createBooking.Response)
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name     string
		response *createBooking.Response
		want     map[string]interface{}
	}{
		{
			name: "booked",
			response: &createBooking.Response{
				Success:   true,
				BookingID: ptr.Ptr("evt-1,evt-2"),
				Message:   ptr.Ptr("Booking confirmed for Asha! Courts 1, 2 on 2025-06-01 at 18:00 for 60 minutes."),
			},
			want: map[string]interface{}{
				"success":    true,
				"booking_id": "evt-1,evt-2",
				"message":    "Booking confirmed for Asha! Courts 1, 2 on 2025-06-01 at 18:00 for 60 minutes.",
			},
		},
		{
			name: "rejected",
			response: &createBooking.Response{
				Success: false,
				Error:   ptr.Ptr("Court 2 is not available at the requested time"),
			},
			want: map[string]interface{}{
				"success": false,
				"error":   "Court 2 is not available at the requested time",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
				return req.Name == "Asha" && assert.ObjectsAreEqual([]int{1, 2}, req.CourtNumbers)
			})).Return(tt.response).Once()

			h := NewHandler(uc, logger.Nop())
			body := `{"facility_id":"pickle_x_mysore","date":"2025-06-01","start_time":"18:00","duration_minutes":60,"name":"Asha","phone_number":"+919876543210","court_numbers":[1,2]}`
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/functions/create_booking", strings.NewReader(body)))

			require.Equal(t, http.StatusOK, rec.Code)

			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
			uc.AssertExpectations(t)
		})
	}
}

func TestHandler_InvalidBody(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/functions/create_booking", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
