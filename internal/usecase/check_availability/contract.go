package check_availability

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

// Metrics интерфейс метрик use case
type Metrics interface {
	IncAvailabilityCheck(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
