package middleware

import (
	"net/http"
	"time"
)

// AccessLog пишет строку лога на каждый запрос
func AccessLog(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			log.Info("%s %s status=%d bytes=%d duration=%s request_id=%s",
				r.Method, r.URL.Path, rec.status, rec.bytes, time.Since(start), GetRequestID(r.Context()))
		})
	}
}
