package main

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Defines and returns the application's route mappings
func (app *application) routes() http.Handler {
	router := httprouter.New()

	//One set of client buckets shared by every limited route
	app.limiter = newClientLimiter(app.config.limiter.rps, app.config.limiter.burst)

	//Set custom 404 and 405 handlers; unmatched traffic counts against the limiter
	router.NotFound = app.rateLimit(http.HandlerFunc(app.notFoundResponse))
	router.MethodNotAllowed = app.rateLimit(http.HandlerFunc(app.methodNotAllowedResponse))

	//Preflight requests are answered by enableCORS
	router.HandleOPTIONS = false

	// =============================================================================
	// HEALTHCHECK - never rate limited, probes must always get a 200
	// =============================================================================
	router.HandlerFunc(http.MethodGet, "/health", app.healthcheckHandler)
	router.HandlerFunc(http.MethodHead, "/health", app.healthcheckHandler)

	// =============================================================================
	// SINGLE-PAGE APPLICATION - not rate limited, a page load fetches many assets
	// =============================================================================
	router.HandlerFunc(http.MethodGet, "/", app.indexHandler)
	router.HandlerFunc(http.MethodHead, "/", app.indexHandler)

	staticFiles := app.static.Handler(app.notFoundResponse, app.serverErrorResponse)
	router.GET("/static/*filepath", staticFiles)
	router.HEAD("/static/*filepath", staticFiles)

	// =============================================================================
	// METRICS
	// =============================================================================
	if app.config.metrics {
		router.Handler(http.MethodGet, "/debug/vars", app.rateLimit(expvar.Handler()))
	}

	//Return configured router with middleware
	return app.metrics(app.recoverPanic(app.correlationID(app.enableCORS(router))))
}
