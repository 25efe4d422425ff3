package calendar

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
)

// Store хранилище событий кортов
type Store interface {
	IsCourtFree(ctx context.Context, courtNumber int, start, end time.Time, facilityID string) (bool, error)
	CreateEvent(ctx context.Context, event *domain.CourtEvent) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
	ListByFacility(ctx context.Context, facilityID string, from, to time.Time) ([]*domain.CourtEvent, error)
}

// Metrics интерфейс метрик обращений к календарю
type Metrics interface {
	ObserveCalendarCall(op, outcome string, d time.Duration)
}

const (
	opIsCourtFree = "is_court_free"
	opCreateEvent = "create_event"
	opDeleteEvent = "delete_event"
	opListEvents  = "list_events"
)

// Instrumented оборачивает хранилище и пишет латентность каждого вызова
type Instrumented struct {
	store   Store
	metrics Metrics
}

// NewInstrumented создает обертку с метриками
func NewInstrumented(store Store, metrics Metrics) *Instrumented {
	return &Instrumented{store: store, metrics: metrics}
}

// IsCourtFree проверяет, свободен ли корт
func (i *Instrumented) IsCourtFree(ctx context.Context, courtNumber int, start, end time.Time, facilityID string) (bool, error) {
	begin := time.Now()
	free, err := i.store.IsCourtFree(ctx, courtNumber, start, end, facilityID)
	i.observe(opIsCourtFree, err, begin)
	return free, err
}

// CreateEvent создает событие корта
func (i *Instrumented) CreateEvent(ctx context.Context, event *domain.CourtEvent) (string, error) {
	begin := time.Now()
	id, err := i.store.CreateEvent(ctx, event)
	i.observe(opCreateEvent, err, begin)
	return id, err
}

// DeleteEvent удаляет событие
func (i *Instrumented) DeleteEvent(ctx context.Context, eventID string) error {
	begin := time.Now()
	err := i.store.DeleteEvent(ctx, eventID)
	i.observe(opDeleteEvent, err, begin)
	return err
}

// ListByFacility возвращает события площадки за интервал
func (i *Instrumented) ListByFacility(ctx context.Context, facilityID string, from, to time.Time) ([]*domain.CourtEvent, error) {
	begin := time.Now()
	events, err := i.store.ListByFacility(ctx, facilityID, from, to)
	i.observe(opListEvents, err, begin)
	return events, err
}

func (i *Instrumented) observe(op string, err error, begin time.Time) {
	if i.metrics == nil {
		return
	}
	i.metrics.ObserveCalendarCall(op, Outcome(err), time.Since(begin))
}

// Outcome метка результата вызова для метрик
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrCourtTaken):
		return "conflict"
	case errors.Is(err, ErrEventNotFound):
		return "not_found"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}
