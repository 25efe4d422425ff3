package availability

import (
	"context"
	"time"
)

// CalendarReader интерфейс чтения календаря кортов
type CalendarReader interface {
	IsCourtFree(ctx context.Context, courtNumber int, start, end time.Time, facilityID string) (bool, error)
}

// Metrics интерфейс метрик деградации чтения
type Metrics interface {
	IncReadDegraded(facilityID, policy string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
