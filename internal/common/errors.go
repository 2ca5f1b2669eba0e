// Package common defines sentinel errors shared by the repository, service
// and transport layers of the seashell service. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Configuration errors, fatal at startup.
	ErrMissingDSN = errors.New("database DSN is not set")
)
