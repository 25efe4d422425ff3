package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-VoiceBooking/pkg/logger"
)

type mockReader struct {
	mock.Mock
}

func (m *mockReader) IsCourtFree(ctx context.Context, courtNumber int, start, end time.Time, facilityID string) (bool, error) {
	args := m.Called(ctx, courtNumber, start, end, facilityID)
	return args.Bool(0), args.Error(1)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) IncReadDegraded(facilityID, policy string) {
	m.Called(facilityID, policy)
}

var (
	start = time.Date(2025, 1, 15, 14, 0, 0, 0, time.UTC)
	end   = start.Add(time.Hour)
)

func TestAvailableCourts_CollectsFreeInOrder(t *testing.T) {
	ctx := context.Background()
	reader := &mockReader{}
	reader.On("IsCourtFree", ctx, 1, start, end, "PBC001").Return(true, nil).Once()
	reader.On("IsCourtFree", ctx, 2, start, end, "PBC001").Return(false, nil).Once()
	reader.On("IsCourtFree", ctx, 3, start, end, "PBC001").Return(true, nil).Once()
	reader.On("IsCourtFree", ctx, 4, start, end, "PBC001").Return(true, nil).Once()

	r := NewResolver(reader, true, nil, logger.Nop())

	assert.Equal(t, []int{1, 3, 4}, r.AvailableCourts(ctx, "PBC001", 4, start, end))
	reader.AssertExpectations(t)
}

func TestAvailableCourts_ReadFailurePolicy(t *testing.T) {
	tests := []struct {
		name   string
		open   bool
		want   []int
		policy string
	}{
		{name: "fail open", open: true, want: []int{1, 2}, policy: "open"},
		{name: "fail closed", open: false, want: []int{1}, policy: "closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			reader := &mockReader{}
			reader.On("IsCourtFree", ctx, 1, start, end, "PBC001").Return(true, nil)
			reader.On("IsCourtFree", ctx, 2, start, end, "PBC001").Return(false, errors.New("calendar down"))

			metrics := &mockMetrics{}
			metrics.On("IncReadDegraded", "PBC001", tt.policy).Once()

			r := NewResolver(reader, tt.open, metrics, logger.Nop())

			assert.Equal(t, tt.want, r.AvailableCourts(ctx, "PBC001", 2, start, end))
			metrics.AssertExpectations(t)
		})
	}
}

func TestAvailableCourts_NoReader(t *testing.T) {
	open := NewResolver(nil, true, nil, logger.Nop())
	assert.Equal(t, []int{1, 2, 3}, open.AvailableCourts(context.Background(), "PBC001", 3, start, end))

	closed := NewResolver(nil, false, nil, logger.Nop())
	assert.Empty(t, closed.AvailableCourts(context.Background(), "PBC001", 3, start, end))
	assert.NotNil(t, closed.AvailableCourts(context.Background(), "PBC001", 3, start, end))
}

func TestAvailableCourts_Idempotent(t *testing.T) {
	ctx := context.Background()
	reader := &mockReader{}
	reader.On("IsCourtFree", ctx, 1, start, end, "PBC001").Return(false, nil)
	reader.On("IsCourtFree", ctx, 2, start, end, "PBC001").Return(true, nil)

	r := NewResolver(reader, true, nil, logger.Nop())

	first := r.AvailableCourts(ctx, "PBC001", 2, start, end)
	second := r.AvailableCourts(ctx, "PBC001", 2, start, end)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{2}, first)
}
