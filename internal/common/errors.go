// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Common application errors.
var (
	// Storage errors.
	ErrNotFound = errors.New("not found")

	// AI suggestion service errors.
	ErrEmptyResponse = errors.New("empty response from ai suggestion service")

	// Category source errors.
	ErrCategorySource = errors.New("category source unavailable")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)
