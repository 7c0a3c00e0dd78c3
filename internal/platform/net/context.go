// Package net holds transport helpers shared by the HTTP server and middleware
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestID returns the id set by the RequestID middleware, if any
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// WithRequestID stores reqID where RequestID finds it
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}
