package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/metinatakli/moviemate/api"
	"github.com/riandyrn/otelchi"
)

var _ api.ServerInterface = (*Application)(nil)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.CORS.TrustedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.sessionManager.LoadAndSave)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter: r,
		// the last middleware runs first
		Middlewares:      []api.MiddlewareFunc{app.authorize, app.rateLimitRoutes()},
		ErrorHandlerFunc: app.paramErrorResponse,
	})
}
