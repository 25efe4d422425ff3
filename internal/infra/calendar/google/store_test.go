package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	"github.com/m04kA/SMC-VoiceBooking/internal/infra/calendar"
	"github.com/m04kA/SMC-VoiceBooking/pkg/logger"
)

// fakeCalendar минимальная эмуляция Events API: list по private extended properties, insert, delete
type fakeCalendar struct {
	mu       sync.Mutex
	events   map[string]*gcal.Event
	inserted []*gcal.Event
	lists    []url.Values
	failList bool
}

func (f *fakeCalendar) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	const prefix = "/calendars/primary/events"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, prefix), "/")

	switch {
	case r.Method == http.MethodGet && id == "":
		if f.failList {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"code":500,"message":"backend error"}}`))
			return
		}
		f.lists = append(f.lists, r.URL.Query())
		items := make([]*gcal.Event, 0)
		for _, e := range f.events {
			if matches(e, r.URL.Query()["privateExtendedProperty"]) {
				items = append(items, e)
			}
		}
		_ = json.NewEncoder(w).Encode(&gcal.Events{Items: items})
	case r.Method == http.MethodPost && id == "":
		var e gcal.Event
		if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		e.Id = "evt-" + e.ExtendedProperties.Private[domain.MetaCourtNumber]
		f.events[e.Id] = &e
		f.inserted = append(f.inserted, &e)
		_ = json.NewEncoder(w).Encode(&e)
	case r.Method == http.MethodDelete && id != "":
		if _, ok := f.events[id]; !ok {
			w.WriteHeader(http.StatusGone)
			_, _ = w.Write([]byte(`{"error":{"code":410,"message":"Resource has been deleted"}}`))
			return
		}
		delete(f.events, id)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func matches(e *gcal.Event, filters []string) bool {
	for _, f := range filters {
		kv := strings.SplitN(f, "=", 2)
		if len(kv) != 2 || e.ExtendedProperties == nil || e.ExtendedProperties.Private[kv[0]] != kv[1] {
			return false
		}
	}
	return true
}

func newStore(t *testing.T, fake *fakeCalendar) *Store {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	store, err := New(context.Background(), Config{CalendarID: "primary", Timeout: time.Second}, logger.Nop(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return store
}

func courtEvent(court int) *domain.CourtEvent {
	start := time.Date(2025, 1, 15, 14, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	return &domain.CourtEvent{
		FacilityID:      "PBC001",
		FacilityName:    "Play Badminton Center",
		CourtNumber:     court,
		CustomerName:    "Asha",
		CustomerPhone:   "+919876543210",
		Start:           start,
		End:             start.Add(time.Hour),
		Date:            "2025-01-15",
		StartTime:       "14:00",
		DurationMinutes: 60,
	}
}

func TestStore_CreateWritesStructuredMetadata(t *testing.T) {
	fake := &fakeCalendar{events: map[string]*gcal.Event{}}
	store := newStore(t, fake)

	id, err := store.CreateEvent(context.Background(), courtEvent(2))
	require.NoError(t, err)
	assert.Equal(t, "evt-2", id)

	require.Len(t, fake.inserted, 1)
	got := fake.inserted[0]
	assert.Equal(t, "Court 2 Booking - Asha", got.Summary)
	assert.Contains(t, got.Description, "Facility: Play Badminton Center (PBC001)")
	assert.Equal(t, "PBC001", got.ExtendedProperties.Private["facility_id"])
	assert.Equal(t, "2", got.ExtendedProperties.Private["court_number"])
	assert.Equal(t, "+919876543210", got.ExtendedProperties.Private["customer_phone"])
	require.NotNil(t, got.Reminders)
	assert.False(t, got.Reminders.UseDefault)
	require.Len(t, got.Reminders.Overrides, 1)
	assert.Equal(t, int64(60), got.Reminders.Overrides[0].Minutes)
	assert.Equal(t, "UTC", got.Start.TimeZone)

	// Перед вставкой выполнялась проверка с фильтром по меткам
	require.NotEmpty(t, fake.lists)
	assert.ElementsMatch(t, []string{"facility_id=PBC001", "court_number=2"}, fake.lists[0]["privateExtendedProperty"])
}

func TestStore_IsCourtFreeUsesMetadataOnly(t *testing.T) {
	fake := &fakeCalendar{events: map[string]*gcal.Event{}}
	store := newStore(t, fake)
	ctx := context.Background()

	_, err := store.CreateEvent(ctx, courtEvent(1))
	require.NoError(t, err)

	e := courtEvent(1)
	free, err := store.IsCourtFree(ctx, 1, e.Start, e.End, "PBC001")
	require.NoError(t, err)
	assert.False(t, free)

	free, err = store.IsCourtFree(ctx, 11, e.Start, e.End, "PBC001")
	require.NoError(t, err)
	assert.True(t, free, "court 11 must not match an event for court 1")

	free, err = store.IsCourtFree(ctx, 1, e.Start, e.End, "PBC00")
	require.NoError(t, err)
	assert.True(t, free, "facility id prefix must not match")
}

func TestStore_CreateRejectsTakenCourt(t *testing.T) {
	fake := &fakeCalendar{events: map[string]*gcal.Event{}}
	store := newStore(t, fake)

	_, err := store.CreateEvent(context.Background(), courtEvent(3))
	require.NoError(t, err)

	_, err = store.CreateEvent(context.Background(), courtEvent(3))
	assert.ErrorIs(t, err, calendar.ErrCourtTaken)
}

func TestStore_ListFailure(t *testing.T) {
	fake := &fakeCalendar{events: map[string]*gcal.Event{}, failList: true}
	store := newStore(t, fake)

	e := courtEvent(1)
	_, err := store.IsCourtFree(context.Background(), 1, e.Start, e.End, "PBC001")
	assert.ErrorIs(t, err, calendar.ErrInternal)
}

func TestStore_Delete(t *testing.T) {
	fake := &fakeCalendar{events: map[string]*gcal.Event{}}
	store := newStore(t, fake)
	ctx := context.Background()

	id, err := store.CreateEvent(ctx, courtEvent(4))
	require.NoError(t, err)

	require.NoError(t, store.DeleteEvent(ctx, id))
	assert.ErrorIs(t, store.DeleteEvent(ctx, id), calendar.ErrEventNotFound)
}

func TestStore_ListByFacility(t *testing.T) {
	fake := &fakeCalendar{events: map[string]*gcal.Event{}}
	store := newStore(t, fake)
	ctx := context.Background()

	_, err := store.CreateEvent(ctx, courtEvent(2))
	require.NoError(t, err)
	_, err = store.CreateEvent(ctx, courtEvent(1))
	require.NoError(t, err)

	// Событие без номера корта пропускается
	fake.events["broken"] = &gcal.Event{
		Id:                 "broken",
		Start:              &gcal.EventDateTime{DateTime: "2025-01-15T10:00:00Z"},
		End:                &gcal.EventDateTime{DateTime: "2025-01-15T11:00:00Z"},
		ExtendedProperties: &gcal.EventExtendedProperties{Private: map[string]string{"facility_id": "PBC001"}},
	}

	e := courtEvent(1)
	events, err := store.ListByFacility(ctx, "PBC001", e.Start.Add(-12*time.Hour), e.Start.Add(12*time.Hour))
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, 1, events[0].CourtNumber)
	assert.Equal(t, 2, events[1].CourtNumber)
	assert.Equal(t, "evt-1", events[0].ID)
	assert.True(t, events[0].Start.Equal(e.Start))
	assert.Equal(t, "Asha", events[0].CustomerName)
	assert.Equal(t, 60, events[0].DurationMinutes)

	last := fake.lists[len(fake.lists)-1]
	assert.Equal(t, []string{"facility_id=PBC001"}, last["privateExtendedProperty"])
	assert.Equal(t, "startTime", last.Get("orderBy"))
}

func TestStore_ListByFacilityFailure(t *testing.T) {
	fake := &fakeCalendar{events: map[string]*gcal.Event{}, failList: true}
	store := newStore(t, fake)

	_, err := store.ListByFacility(context.Background(), "PBC001", time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, calendar.ErrInternal)
}
