package courtevents

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	"github.com/m04kA/SMC-VoiceBooking/internal/infra/calendar"
)

func TestBuildOverlapQuery(t *testing.T) {
	start := time.Date(2025, 1, 15, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	query, args, err := buildOverlapQuery("PBC001", 2, start, end)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT EXISTS (SELECT 1 FROM court_events WHERE court_number = $1 AND facility_id = $2 AND starts_at < $3 AND ends_at > $4)",
		query)
	assert.Equal(t, []interface{}{2, "PBC001", end, start}, args)
}

func TestBuildInsertQuery(t *testing.T) {
	start := time.Date(2025, 1, 15, 14, 0, 0, 0, time.UTC)
	e := &domain.CourtEvent{
		FacilityID:      "PBC001",
		FacilityName:    "Play Badminton Center",
		CourtNumber:     3,
		CustomerName:    "Asha",
		CustomerPhone:   "+919876543210",
		Start:           start,
		End:             start.Add(time.Hour),
		Date:            "2025-01-15",
		StartTime:       "14:00",
		DurationMinutes: 60,
	}

	query, args, err := buildInsertQuery("8d1c9a54-7c1e-4a47-9f59-2a5c2b0f4b11", e)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO court_events (id,facility_id,facility_name,court_number,customer_name,customer_phone,"+
			"booking_date,start_time,duration_minutes,starts_at,ends_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)",
		query)
	require.Len(t, args, 11)
	assert.Equal(t, 3, args[3])
	assert.Equal(t, start, args[9])
}

func TestIsSerializationFailure(t *testing.T) {
	wrapped := fmt.Errorf("%w: commit: %w", errors.New("tx"), &pq.Error{Code: "40001"})
	assert.True(t, isSerializationFailure(wrapped))
	assert.False(t, isSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, isSerializationFailure(errors.New("plain")))
}

func TestDeleteEvent_RejectsNonUUID(t *testing.T) {
	r := NewRepository(nil, nil)
	assert.ErrorIs(t, r.DeleteEvent(context.Background(), "evt-1"), calendar.ErrEventNotFound)
}

func TestCreateEvent_ValidatesBeforeTransaction(t *testing.T) {
	r := NewRepository(nil, nil)
	_, err := r.CreateEvent(context.Background(), &domain.CourtEvent{FacilityID: "PBC001"})
	assert.ErrorIs(t, err, calendar.ErrInvalidEvent)
}
