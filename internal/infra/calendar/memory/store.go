package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	"github.com/m04kA/SMC-VoiceBooking/internal/infra/calendar"
)

// Store хранилище событий кортов в памяти процесса.
// Проверка пересечения и вставка выполняются под одной блокировкой
type Store struct {
	mu     sync.RWMutex
	events map[string]*domain.CourtEvent
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{events: make(map[string]*domain.CourtEvent)}
}

// IsCourtFree проверяет, что у корта нет событий, пересекающих [start, end)
func (s *Store) IsCourtFree(ctx context.Context, courtNumber int, start, end time.Time, facilityID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %v", calendar.ErrInternal, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return !s.overlapsLocked(facilityID, courtNumber, start, end), nil
}

// CreateEvent сохраняет событие, если корт свободен, и возвращает его id
func (s *Store) CreateEvent(ctx context.Context, event *domain.CourtEvent) (string, error) {
	if err := calendar.Validate(event); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", calendar.ErrInternal, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.overlapsLocked(event.FacilityID, event.CourtNumber, event.Start, event.End) {
		return "", fmt.Errorf("%w: court %d of %s", calendar.ErrCourtTaken, event.CourtNumber, event.FacilityID)
	}

	stored := *event
	stored.ID = uuid.NewString()
	s.events[stored.ID] = &stored

	return stored.ID, nil
}

// DeleteEvent удаляет событие по id
func (s *Store) DeleteEvent(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[eventID]; !ok {
		return fmt.Errorf("%w: %s", calendar.ErrEventNotFound, eventID)
	}
	delete(s.events, eventID)
	return nil
}

// ListByFacility возвращает копии событий площадки, пересекающих [from, to),
// отсортированные по началу и номеру корта
func (s *Store) ListByFacility(ctx context.Context, facilityID string, from, to time.Time) ([]*domain.CourtEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", calendar.ErrInternal, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.CourtEvent, 0)
	for _, e := range s.events {
		if e.FacilityID == facilityID && e.Overlaps(from, to) {
			copied := *e
			out = append(out, &copied)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].CourtNumber < out[j].CourtNumber
	})
	return out, nil
}

func (s *Store) overlapsLocked(facilityID string, courtNumber int, start, end time.Time) bool {
	for _, e := range s.events {
		if e.FacilityID == facilityID && e.CourtNumber == courtNumber && e.Overlaps(start, end) {
			return true
		}
	}
	return false
}
