package main

import (
	"net/http"
	"os"
)

// Handles the health check endpoint. The body always reports "ok"; with the
// echo flag on it also carries the configured environment variable, read on
// every request and null when unset
func (app *application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"status": "ok",
	}

	if app.config.health.echo {
		name := app.config.health.echoVar
		if val, ok := os.LookupEnv(name); ok {
			env[name] = val
		} else {
			env[name] = nil
		}
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
