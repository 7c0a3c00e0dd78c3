// Package http provides helpers for writing JSON responses in the Factory envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "libfj/internal/platform/errors"
	pnet "libfj/internal/platform/net"
)

// Envelope is the body of every Factory answer
type Envelope struct {
	Response   any    `json:"response"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if id := pnet.RequestID(r.Context()); id != "" {
		w.Header().Set("X-Request-ID", id)
	}

	// an error body picks its own status
	if err, ok := resp.Body.(error); ok && err != nil {
		status = perr.HTTPStatusCode(perr.CodeOf(err))
		JSON(w, status, Envelope{StatusCode: status, Message: err.Error()})
		return
	}
	JSON(w, status, Envelope{Response: resp.Body, StatusCode: status})
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }
