package check_availability

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("check_availability: facility not found")

	// ErrSlotRejected слот нарушает правила площадки или часы работы
	ErrSlotRejected = errors.New("check_availability: slot rejected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)

// unexpectedError непредвиденный сбой, текст которого показывается звонящему как есть
type unexpectedError struct {
	cause string
}

func (e *unexpectedError) Error() string {
	return e.cause
}

func (e *unexpectedError) Unwrap() error {
	return ErrInternal
}
