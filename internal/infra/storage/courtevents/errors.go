package courtevents

import (
	"errors"

	"github.com/m04kA/SMC-VoiceBooking/internal/infra/calendar"
)

var (
	// ErrCourtTaken возвращается, когда на корт уже есть пересекающееся событие
	ErrCourtTaken = calendar.ErrCourtTaken

	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = calendar.ErrEventNotFound

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("courtevents.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("courtevents.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("courtevents.repository: failed to scan row")
)
