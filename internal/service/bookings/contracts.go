package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
)

// EventStore интерфейс хранилища событий кортов
type EventStore interface {
	ListByFacility(ctx context.Context, facilityID string, from, to time.Time) ([]*domain.CourtEvent, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// FacilityDirectory интерфейс справочника площадок
type FacilityDirectory interface {
	GetByID(id string) (*domain.Facility, error)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, v interface{}) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
