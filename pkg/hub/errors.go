package hub

import (
	"errors"
	"fmt"
	"net/http"
)

// failureClass splits hub call failures the way callers need to react to
// them: fatal means this instance's own credential is bad and the process is
// a restart candidate; upstream means the hub itself is down and a later
// request may succeed; badRequest means we sent something the hub rejected.
type failureClass int

const (
	classFatal failureClass = iota
	classUpstream
	classBadRequest
)

type apiError struct {
	class  failureClass
	status int // status to surface to our own caller
	msg    string
	cause  error
}

func (e *apiError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *apiError) Unwrap() error { return e.cause }

func fatalErr(msg string) error {
	return &apiError{class: classFatal, status: http.StatusInternalServerError, msg: msg}
}

func upstreamErr(msg string, cause error) error {
	return &apiError{class: classUpstream, status: http.StatusBadGateway, msg: msg, cause: cause}
}

func badRequestErr(msg string) error {
	return &apiError{class: classBadRequest, status: http.StatusInternalServerError, msg: msg}
}

// HTTPStatus maps a verification failure to the status the request should
// answer with. Unclassified errors surface as 500.
func HTTPStatus(err error) int {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae.status
	}
	return http.StatusInternalServerError
}

// IsFatal reports whether err means our own API token was rejected.
func IsFatal(err error) bool {
	var ae *apiError
	return errors.As(err, &ae) && ae.class == classFatal
}

// IsUpstream reports whether err is a transient hub-side failure.
func IsUpstream(err error) bool {
	var ae *apiError
	return errors.As(err, &ae) && ae.class == classUpstream
}
