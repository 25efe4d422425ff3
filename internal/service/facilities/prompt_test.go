package facilities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	"github.com/m04kA/SMC-VoiceBooking/pkg/ptr"
)

func TestSystemPrompt(t *testing.T) {
	f := &domain.Facility{
		ID:             "PBC001",
		Name:           "Play Badminton Center",
		NumberOfCourts: 4,
		OpenTime:       "06:00",
		CloseTime:      "22:00",
		Pricing:        domain.Pricing{WeekdayPerHour: 400, WeekendPerHour: 500},
		Rentals:        domain.Rentals{Racket: 50, Shoes: 30, ShuttleSale: 80},
		Coaching:       domain.Coaching{Available: true, Fee: 3000, Timings: []string{"06:00-07:00", "17:00-18:00"}},
	}

	prompt := SystemPrompt(f, "")

	assert.Contains(t, prompt, "You are an AI voice assistant for Play Badminton Center")
	assert.Contains(t, prompt, "- Number of Courts: 4")
	assert.Contains(t, prompt, "- Operating Hours: 06:00 to 22:00")
	assert.Contains(t, prompt, "- Minimum Duration: 60 minutes")
	assert.Contains(t, prompt, "- Weekday (Mon-Fri): ₹400/hour")
	assert.Contains(t, prompt, "- Timings: 06:00-07:00, 17:00-18:00")
	assert.Contains(t, prompt, "Below 18 years")
	assert.Contains(t, prompt, "All bookings must start at hourly boundaries")
	assert.NotContains(t, prompt, "CALLER ID")
}

func TestSystemPrompt_CallerAndFlexibleSlots(t *testing.T) {
	f := &domain.Facility{
		Name:         "Smash Arena",
		OpenTime:     "07:00",
		CloseTime:    "23:00",
		BookingRules: domain.BookingRules{MinimumDuration: 30, DurationMultiples: 30, FixedSlots: ptr.Ptr(false)},
	}

	prompt := SystemPrompt(f, " +919900000000 ")

	assert.Contains(t, prompt, "\n\nCALLER ID: +919900000000")
	assert.Contains(t, prompt, "Duration must be in multiples of 30 minutes only")
	assert.NotContains(t, prompt, "hourly boundaries (e.g., 06:00, 14:00, 18:00)")
}
