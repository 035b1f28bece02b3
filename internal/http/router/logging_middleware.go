package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"petstore/internal/logging"
)

func requestLogger(logger logging.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_ip", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			}

			if status >= http.StatusInternalServerError {
				logger.Warn("http_request", args...)
				return
			}
			logger.Info("http_request", args...)
		}

		return http.HandlerFunc(fn)
	}
}
