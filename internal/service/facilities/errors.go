package facilities

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("facilities: facility not found")

	// ErrInvalidFacility возвращается при некорректной конфигурации площадки
	ErrInvalidFacility = errors.New("facilities: invalid facility configuration")

	// ErrDuplicateFacility возвращается при повторе id или номера телефона
	ErrDuplicateFacility = errors.New("facilities: duplicate facility")

	// ErrLoad возвращается, когда файл конфигурации не удалось прочитать
	ErrLoad = errors.New("facilities: failed to load configuration")
)
