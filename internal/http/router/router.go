package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "petstore/internal/http/apidocs" // registers the swagger document
	"petstore/internal/http/handlers/health"
	"petstore/internal/http/handlers/pets"
	"petstore/internal/http/responses"
	"petstore/internal/logging"
	"petstore/internal/petstore"
)

func NewRouter(
	logger logging.Logger,
	requestTimeout time.Duration,
	healthHandler *health.Handler,
	petsHandler *pets.Handler,
) chi.Router {
	r := chi.NewRouter()

	useBaseMiddlewares(r, logger, requestTimeout)

	r.Route(petstore.BasePath, func(r chi.Router) {
		r.Get("/health", healthHandler.Check)
		r.Route("/pets", petsHandler.Routes)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteNotFound(w, r)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteMethodNotAllowed(w, r)
	})

	return r
}
