// Package errorz holds the domain error taxonomy. Every component-level
// failure maps to exactly one sentinel; handlers translate them to HTTP
// statuses and never leak internal detail.
package errorz

import "errors"

var (
	Unauthenticated = errors.New("unauthenticated")
	Forbidden       = errors.New("forbidden")
	NotFound        = errors.New("not found")
	Conflict        = errors.New("conflict")
	Validation      = errors.New("validation failed")
)
