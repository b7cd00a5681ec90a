package main

import (
	"context"
	"net/http"
)

// contextKey is a custom type for context keys
type contextKey string

// correlationIDContextKey is the key used to store/retrieve the correlation id
const correlationIDContextKey = contextKey("correlation_id")

// contextSetCorrelationID adds the correlation id to the request context and returns the updated request
func (app *application) contextSetCorrelationID(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), correlationIDContextKey, id)
	return r.WithContext(ctx)
}

// contextGetCorrelationID retrieves the correlation id from the request context
// Returns an empty string when the middleware did not run
func (app *application) contextGetCorrelationID(r *http.Request) string {
	id, ok := r.Context().Value(correlationIDContextKey).(string)
	if !ok {
		return ""
	}
	return id
}
