package slots

import "errors"

var (
	// ErrInvalidTimeFormat время не в формате HH:MM
	ErrInvalidTimeFormat = errors.New("slots: invalid time format")

	// ErrInvalidDateFormat дата не в формате YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("slots: invalid date format")

	// ErrMisalignedStart время начала не на границе часа при fixed slots
	ErrMisalignedStart = errors.New("slots: start time is not aligned to the hour")

	// ErrDurationTooShort длительность меньше минимальной
	ErrDurationTooShort = errors.New("slots: duration is below the minimum")

	// ErrDurationNotMultiple длительность не кратна шагу
	ErrDurationNotMultiple = errors.New("slots: duration is not a multiple of the step")

	// ErrNoCourts не указано ни одного корта
	ErrNoCourts = errors.New("slots: no courts requested")

	// ErrCourtOutOfRange номер корта вне диапазона площадки
	ErrCourtOutOfRange = errors.New("slots: court number out of range")

	// ErrDuplicateCourts номера кортов повторяются
	ErrDuplicateCourts = errors.New("slots: duplicate court numbers")

	// ErrOpensLater бронирование начинается раньше открытия
	ErrOpensLater = errors.New("slots: starts before opening time")

	// ErrClosesEarlier бронирование заканчивается позже закрытия
	ErrClosesEarlier = errors.New("slots: ends after closing time")
)

// RuleError нарушение правила бронирования.
// Error() возвращает причину, которую ассистент зачитывает звонящему,
// Unwrap() возвращает категорию для errors.Is
type RuleError struct {
	Kind   error
	Reason string
}

func (e *RuleError) Error() string {
	return e.Reason
}

func (e *RuleError) Unwrap() error {
	return e.Kind
}

func ruleError(kind error, reason string) error {
	return &RuleError{Kind: kind, Reason: reason}
}
