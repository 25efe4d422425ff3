package calendar

import (
	"errors"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
)

var (
	// ErrCourtTaken возвращается, когда на корт уже есть пересекающееся событие
	ErrCourtTaken = domain.ErrCourtTaken

	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = errors.New("calendar: event not found")

	// ErrInvalidEvent возвращается при некорректных данных события
	ErrInvalidEvent = errors.New("calendar: invalid event")

	// ErrInternal возвращается при ошибках обращения к календарю
	ErrInternal = errors.New("calendar: internal error")
)
