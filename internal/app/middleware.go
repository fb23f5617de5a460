package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/metinatakli/moviemate/api"
	"github.com/metinatakli/moviemate/internal/domain"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// requestLogger attaches a logger carrying the request id, method and uri to
// the request context.
func (app *Application) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := app.logger.With(
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"uri", r.URL.RequestURI(),
		)

		next.ServeHTTP(w, contextSetLogger(r, logger))
	})
}

func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId := app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
		if userId == 0 {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), SessionKeyUserId, userId)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

// requireAdmin must run after requireAuthentication.
func (app *Application) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId := app.contextGetUserId(r)

		user, err := app.userRepo.GetById(r.Context(), userId)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				app.unauthorizedAccessResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}

			return
		}

		if !user.IsAdmin {
			app.contextGetLogger(r).Warn("non-admin user attempted catalog change", "userId", userId)
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// authorize enforces the security requirement the generated wrapper stored in
// the request context for the matched operation.
func (app *Application) authorize(next http.Handler) http.Handler {
	admin := app.requireAuthentication(app.requireAdmin(next))
	session := app.requireAuthentication(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Context().Value(api.AdminAuthScopes) != nil:
			admin.ServeHTTP(w, r)
		case r.Context().Value(api.SessionAuthScopes) != nil:
			session.ServeHTTP(w, r)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// rateLimitRoutes gives credential checks and each upstream provider their
// own per-IP counter. Other requests pass through.
func (app *Application) rateLimitRoutes() func(http.Handler) http.Handler {
	credentials, tmdbLimit, omdbLimit := app.rateLimit(), app.rateLimit(), app.rateLimit()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			switch {
			case strings.HasPrefix(path, "/tmdb/"):
				tmdbLimit(next).ServeHTTP(w, r)
			case strings.HasPrefix(path, "/omdb/"):
				omdbLimit(next).ServeHTTP(w, r)
			case r.Method == http.MethodPost && (path == "/users" || path == "/sessions"):
				credentials(next).ServeHTTP(w, r)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// rateLimit returns a per-IP limiter, or a pass-through middleware when rate
// limiting is disabled. Every call creates an independent counter.
func (app *Application) rateLimit() func(http.Handler) http.Handler {
	if !app.config.RateLimit.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		app.config.RateLimit.Requests,
		app.config.RateLimit.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(app.rateLimitExceededResponse),
	)
}
