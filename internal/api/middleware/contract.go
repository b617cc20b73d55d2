package middleware

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

// SessionChecker проверяет сессию роли на бэкенде
type SessionChecker interface {
	CheckSession(ctx context.Context, role domain.Role) (*domain.Session, error)
}

// HTTPMetrics метрики HTTP запросов
type HTTPMetrics interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
