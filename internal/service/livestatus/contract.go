package livestatus

import "context"

// Transport устанавливает соединение с push-каналом и подписывается на топик статусов
type Transport interface {
	Dial(ctx context.Context) (Stream, error)
}

// Stream активная подписка на топик
// Канал Messages закрывается при потере соединения
type Stream interface {
	Messages() <-chan []byte
	Close() error
}

// Metrics метрики push-канала
type Metrics interface {
	PushEvent(result string)
	PushReconnect()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
