package realtime

import (
	"context"
	"encoding/json"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
)

// FacilityDirectory справочник площадок
type FacilityDirectory interface {
	GetByID(id string) (*domain.Facility, error)
}

// FunctionDispatcher выполняет вызовы функций ассистента
type FunctionDispatcher interface {
	Call(ctx context.Context, name string, args json.RawMessage, defaultFacilityID string) interface{}
}

// Metrics счетчик активных сессий
type Metrics interface {
	RealtimeSessionOpened()
	RealtimeSessionClosed()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
