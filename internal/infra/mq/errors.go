package mq

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться к брокеру
	ErrConnect = errors.New("mq: failed to connect")

	// ErrMarshal возвращается, когда событие не удалось сериализовать
	ErrMarshal = errors.New("mq: failed to marshal event")

	// ErrPublish возвращается, когда брокер не принял сообщение
	ErrPublish = errors.New("mq: failed to publish")
)
