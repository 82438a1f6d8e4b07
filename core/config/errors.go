package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil pointer.
	ErrNilConfig = errors.New("config target must not be nil")
	// ErrParseFailed is returned when environment parsing fails, wrapped
	// together with the underlying caarlos0/env error.
	ErrParseFailed = errors.New("failed to parse environment configuration")
)
