package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a stable machine-readable tag carried on every failure response.
type Kind string

const (
	KindInvalidReference      Kind = "invalid_reference"
	KindInvalidInput          Kind = "invalid_input"
	KindTranscriptUnavailable Kind = "transcript_unavailable"
	KindUpstream              Kind = "upstream_error"
	KindUnsupportedFormat     Kind = "unsupported_format"
	KindInternal              Kind = "internal"
)

type AppError struct {
	Code    int    `json:"-"`
	Kind    Kind   `json:"kind"`
	Message string `json:"error"`
	Op      string `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func InvalidInput(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidInput,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func InvalidReference(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidReference,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// TranscriptUnavailable covers videos that have no transcript, are private,
// or do not exist. The transcript service embeds it in the response body
// rather than surfacing it as a transport failure.
func TranscriptUnavailable(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusOK,
		Kind:    KindTranscriptUnavailable,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func Upstream(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Kind:    KindUpstream,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func UnsupportedFormat(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindUnsupportedFormat,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func Internal(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// KindOf reports the kind tag of err, or KindInternal for unrecognized errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
