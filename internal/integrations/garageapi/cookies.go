package garageapi

import (
	"context"
	"net/http"
)

type cookiesKey struct{}

// WithCookies сохраняет cookie браузерного запроса, они пробрасываются в бэкенд
// Сессия бэкенда живет в cookie, собственной сессии у сервиса нет
func WithCookies(ctx context.Context, cookies []*http.Cookie) context.Context {
	return context.WithValue(ctx, cookiesKey{}, cookies)
}

func cookiesFromContext(ctx context.Context) []*http.Cookie {
	cookies, _ := ctx.Value(cookiesKey{}).([]*http.Cookie)
	return cookies
}
