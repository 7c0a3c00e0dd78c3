package httpkit

import (
	"net/http"

	"libfj/internal/platform/net/middleware"
)

// CommonStack returns the baseline per module middleware slice
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.AllowContentType("application/json"),
		middleware.Throttle(64),
	}
}
