package factory

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// StatusError carries a non-2xx answer from the Factory
type StatusError struct {
	Status int
	Body   string
}

// Error interface
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("factory status %d", e.Status)
	}
	return fmt.Sprintf("factory status %d: %s", e.Status, e.Body)
}

// HTTPStatus interface
func (e *StatusError) HTTPStatus() int { return e.Status }

// StatusOf returns the Factory status carried by err, or 0
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

// IsNotFound reports whether err is a Factory 404
func IsNotFound(err error) bool { return StatusOf(err) == http.StatusNotFound }

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
