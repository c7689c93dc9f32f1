package service

import "errors"

var (
	// ErrValidation marks a request missing required input.
	ErrValidation = errors.New("invalid request")
	// ErrLocationNotFound means the postcode could not be geocoded.
	ErrLocationNotFound = errors.New("location not found")
	// ErrUpstream means a required data source failed.
	ErrUpstream = errors.New("upstream failure")
)
