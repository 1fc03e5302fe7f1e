package events

import "errors"

var (
	// ErrEncode возвращается при ошибке сериализации события
	ErrEncode = errors.New("events publisher: failed to encode event")

	// ErrPublish возвращается, когда брокер не принял сообщение
	ErrPublish = errors.New("events publisher: failed to publish event")
)
