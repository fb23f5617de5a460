package app

import (
	"context"
	"net/http"
	"time"

	"github.com/metinatakli/moviemate/api"
)

const (
	statusUp       = "UP"
	statusDown     = "DOWN"
	statusDegraded = "DEGRADED"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	components := map[string]string{}

	if app.db != nil {
		components["postgres"] = componentStatus(app.db.Ping(ctx))
	}
	if app.redis != nil {
		components["redis"] = componentStatus(app.redis.Ping(ctx).Err())
	}
	if app.mongo != nil {
		components["mongo"] = componentStatus(app.mongo.Ping(ctx, nil))
	}

	status := statusUp
	for name, s := range components {
		if s == statusDown {
			app.contextGetLogger(r).Warn("health check failed", "component", name)
			status = statusDegraded
		}
	}

	resp := api.HealthcheckResponse{
		Status: status,
		SystemInfo: api.SystemInfo{
			Version:     version,
			Environment: app.config.Env,
		},
		Components: components,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(api.SpecYAML())
}

func componentStatus(err error) string {
	if err != nil {
		return statusDown
	}

	return statusUp
}
