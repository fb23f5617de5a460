package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/moviemate/api"
	"github.com/metinatakli/moviemate/internal/domain"
	"github.com/metinatakli/moviemate/internal/provider"
	appvalidator "github.com/metinatakli/moviemate/internal/validator"
)

const (
	ErrInternalServer      = "The server encountered a problem and could not process your request"
	ErrNotFound            = "The requested resource not found"
	ErrMethodNotAllowed    = "The %s method is not supported for this resource"
	ErrEditConflict        = "Unable to update the record due to an edit conflict, please try again"
	ErrInvalidCredentials  = "Invalid authentication credentials"
	ErrUnauthorized        = "You must be authenticated to access this resource"
	ErrForbidden           = "You do not have permission to access this resource"
	ErrRateLimitExceeded   = "Rate limit exceeded"
	ErrServiceUnavailable  = "The upstream movie service is temporarily unavailable, please try again later"
	ErrFailedValidation    = "One or more fields have invalid values"
	ErrDuplicateFavorite   = "Movie is already in your favorites"
	ErrInvalidMovieID      = "invalid movie ID"
	ErrMissingSearchQuery  = "search query is required"
	ErrInvalidRatingFilter = "rating must be a decimal number"
)

func (app *Application) logError(r *http.Request, err error) {
	logger := app.contextGetLogger(r)

	logger.Error(err.Error())

	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		hub.CaptureException(err)
		return
	}

	sentry.CaptureException(err)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, fmt.Sprintf(ErrMethodNotAllowed, r.Method))
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// paramErrorResponse answers requests whose path or query parameters the
// generated server wrapper could not bind.
func (app *Application) paramErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var formatErr *api.InvalidParamFormatError
	if !errors.As(err, &formatErr) {
		app.badRequestResponse(w, r, err)
		return
	}

	switch formatErr.ParamName {
	case "id", "movieId":
		app.badRequestResponse(w, r, errors.New(ErrInvalidMovieID))
	default:
		app.badRequestResponse(w, r, fmt.Errorf("invalid format for parameter %s", formatErr.ParamName))
	}
}

func (app *Application) editConflictResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusConflict, ErrEditConflict)
}

func (app *Application) conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusConflict, message)
}

func (app *Application) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrInvalidCredentials)
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthorized)
}

func (app *Application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusForbidden, ErrForbidden)
}

func (app *Application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusTooManyRequests, ErrRateLimitExceeded)
}

func (app *Application) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.contextGetLogger(r).Warn("upstream provider unavailable", "error", err)

	app.errorResponse(w, r, http.StatusServiceUnavailable, ErrServiceUnavailable)
}

// failedValidationResponse answers 422 with one entry per failing field.
// Errors that are not validator errors are reported against the request as a
// whole.
func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrors validator.ValidationErrors

	issues := []api.ValidationError{}

	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			issues = append(issues, api.ValidationError{
				Field: fe.Field(),
				Issue: appvalidator.ValidationMessage(fe),
			})
		}
	} else {
		issues = append(issues, api.ValidationError{
			Field: "request",
			Issue: err.Error(),
		})
	}

	app.validationErrorResponse(w, r, issues)
}

func (app *Application) invalidFieldResponse(w http.ResponseWriter, r *http.Request, field, issue string) {
	app.validationErrorResponse(w, r, []api.ValidationError{{Field: field, Issue: issue}})
}

func (app *Application) validationErrorResponse(w http.ResponseWriter, r *http.Request, issues []api.ValidationError) {
	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: issues,
	}

	err := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// catalogErrorResponse maps errors coming out of the catalog service and the
// movie store.
func (app *Application) catalogErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		app.failedValidationResponse(w, r, err)
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	case errors.Is(err, domain.ErrEditConflict):
		app.editConflictResponse(w, r)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

// providerErrorResponse maps TMDB and OMDb client failures.
func (app *Application) providerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, provider.ErrNotFound):
		app.notFoundResponse(w, r)
	case errors.Is(err, provider.ErrUnavailable):
		app.serviceUnavailableResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}
