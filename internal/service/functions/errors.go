package functions

import "errors"

var (
	// ErrUnknownFunction возвращается для неизвестного имени функции
	ErrUnknownFunction = errors.New("functions: unknown function")

	// ErrInvalidArguments возвращается, когда аргументы не удалось разобрать
	ErrInvalidArguments = errors.New("functions: invalid arguments")
)
