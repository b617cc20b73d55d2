package garageapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics метрики обращений к бэкенду
type Metrics interface {
	BackendCall(operation string, status int, d time.Duration)
}
