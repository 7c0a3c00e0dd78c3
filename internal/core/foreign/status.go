package foreign

import (
	perr "libfj/internal/platform/errors"
)

// Status is the result code of the status-returning exports
type Status int32

// Status codes; values are ABI
const (
	StatusOK Status = iota
	StatusUnknown
	StatusUnavailable
	StatusNotFound
	StatusRateLimited
	StatusDecode
	StatusInvalidArgument
)

var statusNames = [...]string{
	StatusOK:              "LIBFJ_OK",
	StatusUnknown:         "LIBFJ_ERR_UNKNOWN",
	StatusUnavailable:     "LIBFJ_ERR_UNAVAILABLE",
	StatusNotFound:        "LIBFJ_ERR_NOT_FOUND",
	StatusRateLimited:     "LIBFJ_ERR_RATE_LIMITED",
	StatusDecode:          "LIBFJ_ERR_DECODE",
	StatusInvalidArgument: "LIBFJ_ERR_INVALID_ARGUMENT",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "LIBFJ_ERR_UNKNOWN"
}

// StatusOf maps an error to its status code
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	switch perr.CodeOf(err) {
	case perr.ErrorCodeUnavailable:
		return StatusUnavailable
	case perr.ErrorCodeNotFound:
		return StatusNotFound
	case perr.ErrorCodeTooManyRequests:
		return StatusRateLimited
	case perr.ErrorCodeDecode, perr.ErrorCodeJSON:
		return StatusDecode
	case perr.ErrorCodeInvalidArgument, perr.ErrorCodeValidation:
		return StatusInvalidArgument
	default:
		return StatusUnknown
	}
}
