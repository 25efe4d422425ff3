package facilities

import "github.com/m04kA/SMC-VoiceBooking/internal/domain"

type FacilityDirectory interface {
	GetByID(id string) (*domain.Facility, error)
	All() []*domain.Facility
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
