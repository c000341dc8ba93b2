package services

import "errors"

var (
	ErrTournamentNotFound = errors.New("tournament not found")

	// ErrInvalidInput wraps contract violations reported by the bracket engine.
	ErrInvalidInput = errors.New("invalid tournament data")

	ErrPublishFailed = errors.New("failed to publish tournament snapshot")
)
