package slots

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	"github.com/m04kA/SMC-VoiceBooking/pkg/ptr"
)

func TestValidateBookingSlot(t *testing.T) {
	defaults := domain.BookingRules{}

	tests := []struct {
		name       string
		startTime  string
		duration   int
		rules      domain.BookingRules
		wantKind   error
		wantReason string
	}{
		{name: "aligned hour and minimum duration", startTime: "14:00", duration: 60, rules: defaults},
		{name: "two hours", startTime: "06:00", duration: 120, rules: defaults},
		{
			name:       "half hour start with fixed slots",
			startTime:  "14:30",
			duration:   60,
			rules:      defaults,
			wantKind:   ErrMisalignedStart,
			wantReason: "Start time must align with hourly boundaries (e.g., 06:00, 14:00). Got 14:30",
		},
		{
			name:       "unparseable start",
			startTime:  "2pm",
			duration:   60,
			rules:      defaults,
			wantKind:   ErrInvalidTimeFormat,
			wantReason: "Invalid time format: 2pm. Expected HH:MM",
		},
		{
			name:       "too short",
			startTime:  "14:00",
			duration:   30,
			rules:      defaults,
			wantKind:   ErrDurationTooShort,
			wantReason: "Duration must be at least 60 minutes",
		},
		{
			name:       "not a multiple",
			startTime:  "14:00",
			duration:   90,
			rules:      defaults,
			wantKind:   ErrDurationNotMultiple,
			wantReason: "Duration must be a multiple of 60 minutes. Got 90",
		},
		{
			name:      "half hour start allowed without fixed slots",
			startTime: "14:30",
			duration:  90,
			rules:     domain.BookingRules{MinimumDuration: 30, DurationMultiples: 30, FixedSlots: ptr.Ptr(false)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBookingSlot(tt.startTime, tt.duration, tt.rules)
			if tt.wantKind == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantKind)
			assert.Equal(t, tt.wantReason, err.Error())

			var ruleErr *RuleError
			require.True(t, errors.As(err, &ruleErr))
		})
	}
}

func TestValidateBookingSlot_AlignmentCheckedFirst(t *testing.T) {
	err := ValidateBookingSlot("14:30", 30, domain.BookingRules{})
	assert.ErrorIs(t, err, ErrMisalignedStart)
}

func TestValidateCourtNumbers(t *testing.T) {
	tests := []struct {
		name       string
		courts     []int
		total      int
		wantKind   error
		wantReason string
	}{
		{name: "single court", courts: []int{1}, total: 4},
		{name: "all courts", courts: []int{4, 3, 2, 1}, total: 4},
		{name: "empty", courts: nil, total: 4, wantKind: ErrNoCourts, wantReason: "At least one court must be specified"},
		{name: "zero", courts: []int{0}, total: 4, wantKind: ErrCourtOutOfRange, wantReason: "Invalid court number 0. Facility has courts 1-4"},
		{name: "above total", courts: []int{1, 5}, total: 4, wantKind: ErrCourtOutOfRange, wantReason: "Invalid court number 5. Facility has courts 1-4"},
		{name: "duplicates", courts: []int{2, 2}, total: 4, wantKind: ErrDuplicateCourts, wantReason: "Duplicate court numbers found in request"},
		{name: "range reported before duplicates", courts: []int{2, 2, 9}, total: 4, wantKind: ErrCourtOutOfRange, wantReason: "Invalid court number 9. Facility has courts 1-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCourtNumbers(tt.courts, tt.total)
			if tt.wantKind == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantKind)
			assert.Equal(t, tt.wantReason, err.Error())
		})
	}
}
