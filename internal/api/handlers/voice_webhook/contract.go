package voice_webhook

import "github.com/m04kA/SMC-VoiceBooking/internal/domain"

type FacilityDirectory interface {
	GetByPhone(number string) (*domain.Facility, error)
	IDs() []string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
