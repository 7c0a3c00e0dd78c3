package middleware

import (
	stdjson "encoding/json"
	stdhttp "net/http"
	"runtime/debug"

	perr "libfj/internal/platform/errors"
	"libfj/internal/platform/logger"
	pnet "libfj/internal/platform/net"
)

type panicWire struct {
	Response   any    `json:"response"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message,omitempty"`
}

// RecoverJSON converts panics into a 500 Factory envelope and logs the stack
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())

			logger.C(logger.WithRequest(r.Context(), reqID)).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			body := panicWire{
				StatusCode: stdhttp.StatusInternalServerError,
				Message:    perr.PanicErrf("panic recovered").Error(),
			}
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(stdhttp.StatusInternalServerError)
			_ = stdjson.NewEncoder(w).Encode(body)
		}()
		next.ServeHTTP(w, r)
	})
}
