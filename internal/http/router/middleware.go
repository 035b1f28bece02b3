package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"petstore/internal/logging"
)

func useBaseMiddlewares(r chi.Router, logger logging.Logger, requestTimeout time.Duration) {
	// Request ID / Real IP / Recover
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger.With("component", "http")))
	r.Use(middleware.Recoverer)

	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}
}
