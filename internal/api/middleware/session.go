package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-GarageDesk/internal/api/handlers"
	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/garageapi"
)

const msgSessionCheckFailed = "не удалось проверить сессию, попробуйте позже"

type sessionKey struct{}
type loginPathKey struct{}

// ForwardCookies пробрасывает cookie браузера в запросы к бэкенду
func ForwardCookies(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := garageapi.WithCookies(r.Context(), r.Cookies())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionGate пропускает запрос только при действующей сессии роли
// Без сессии - редирект на страницу входа роли, бэкенд недоступен - 502
func SessionGate(checker SessionChecker, role domain.Role, loginPath string, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), loginPathKey{}, loginPath)

			session, err := checker.CheckSession(ctx, role)
			if err != nil {
				log.Error("SessionGate: %s session check failed for %s: %v", role, r.URL.Path, err)
				handlers.RespondBadGateway(w, msgSessionCheckFailed)
				return
			}
			if !session.Authenticated {
				log.Warn("SessionGate: no %s session for %s, redirect to %s", role, r.URL.Path, loginPath)
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}

			ctx = context.WithValue(ctx, sessionKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession сессия, проверенная SessionGate
func GetSession(ctx context.Context) (*domain.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*domain.Session)
	return s, ok && s != nil
}

// WithSession кладет сессию в контекст (для тестов обработчиков)
func WithSession(ctx context.Context, s *domain.Session, loginPath string) context.Context {
	ctx = context.WithValue(ctx, loginPathKey{}, loginPath)
	return context.WithValue(ctx, sessionKey{}, s)
}

// LoginPath страница входа роли текущего запроса
func LoginPath(ctx context.Context) string {
	path, _ := ctx.Value(loginPathKey{}).(string)
	if path == "" {
		return "/"
	}
	return path
}

// RedirectToLogin отправляет на страницу входа, если сессия истекла посреди запроса
func RedirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, LoginPath(r.Context()), http.StatusFound)
}
