// Package server provides the HTTP REST API for the internship match engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/internodyssey/intern-match/internal/embedding"
	"github.com/internodyssey/intern-match/internal/schemas"
)

// ErrJobNotFound indicates a stored posting was not found.
type ErrJobNotFound struct {
	JobID string
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.JobID)
}

// ErrNoCurrentJob indicates no posting has been submitted yet.
type ErrNoCurrentJob struct{}

func (e *ErrNoCurrentJob) Error() string {
	return "no job has been submitted yet"
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Embedding and extraction backend failures surface as 502: the request was
// well-formed but an upstream model call failed, and no partial result is
// returned.
func HTTPStatus(err error) int {
	var (
		jobNotFound  *ErrJobNotFound
		noCurrentJob *ErrNoCurrentJob
		validation   *ErrValidation
		schemaErr    *schemas.ValidationError
		embedErr     *embedding.Error
	)
	switch {
	case errors.As(err, &jobNotFound), errors.As(err, &noCurrentJob):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &embedErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
