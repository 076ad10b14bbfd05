// Package net holds request scoped context helpers shared by transports
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest stores reqID where chi's RequestID middleware would put it
// so RequestID works for requests built outside the router (tests, batch fan-out)
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on ctx or ""
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
