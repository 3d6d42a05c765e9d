package aiquiz

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUpstreamCall indicates the generative model call itself failed.
type ErrUpstreamCall struct {
	// StatusCode is the HTTP status the model API answered with, when known.
	StatusCode int
	Err        error
}

func (e *ErrUpstreamCall) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("model call failed (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("model call failed: %v", e.Err)
}

func (e *ErrUpstreamCall) Unwrap() error { return e.Err }

// ErrResponseFormat indicates the model output is not parseable JSON.
type ErrResponseFormat struct {
	Content string
	Err     error
}

func (e *ErrResponseFormat) Error() string {
	return fmt.Sprintf("model returned malformed JSON: %v", e.Err)
}

func (e *ErrResponseFormat) Unwrap() error { return e.Err }

// ErrResponseStructure indicates the model output parsed but has no
// questions array at the top level.
type ErrResponseStructure struct {
	Content string
	Err     error
}

func (e *ErrResponseStructure) Error() string {
	return fmt.Sprintf("invalid response structure from model: %v", e.Err)
}

func (e *ErrResponseStructure) Unwrap() error { return e.Err }

// ErrRequestShape indicates the caller's request body is unusable.
type ErrRequestShape struct {
	Field  string
	Reason string
	Err    error
}

func (e *ErrRequestShape) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("field %q %s", e.Field, e.Reason)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	default:
		return e.Reason
	}
}

func (e *ErrRequestShape) Unwrap() error { return e.Err }

// classify maps an error to the (status, kind) pair written to the client.
func classify(err error) (int, string) {
	var (
		upstream  *ErrUpstreamCall
		format    *ErrResponseFormat
		structure *ErrResponseStructure
		shape     *ErrRequestShape
		tooLarge  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, "PayloadTooLarge"
	case errors.As(err, &shape):
		return http.StatusBadRequest, "RequestShapeError"
	case errors.As(err, &upstream):
		return http.StatusBadGateway, "UpstreamCallError"
	case errors.As(err, &format):
		return http.StatusUnprocessableEntity, "ResponseFormatError"
	case errors.As(err, &structure):
		return http.StatusUnprocessableEntity, "ResponseStructureError"
	default:
		return http.StatusInternalServerError, "InternalError"
	}
}
