package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
)

// FacilityDirectory интерфейс справочника площадок
type FacilityDirectory interface {
	GetByID(id string) (*domain.Facility, error)
}

// AvailabilityResolver интерфейс поиска свободных кортов
type AvailabilityResolver interface {
	AvailableCourts(ctx context.Context, facilityID string, totalCourts int, start, end time.Time) []int
}

// CalendarWriter интерфейс записи в календарь.
// CreateEvent возвращает domain.ErrCourtTaken, если хранилище отклонило пересекающуюся запись
type CalendarWriter interface {
	CreateEvent(ctx context.Context, event *domain.CourtEvent) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, v interface{}) error
}

// Locker интерфейс блокировки по ключу внутри процесса
type Locker interface {
	Lock(key string) func()
}

// Metrics интерфейс метрик use case
type Metrics interface {
	IncBooking(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
