package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Scoring errors
	ErrInvalidParameter = errors.New("constant outside its valid domain")

	// Aggregate-level errors
	ErrEmptyInput       = errors.New("no samples to analyze")
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrAllSamplesFailed = errors.New("every sample failed scoring")

	// Determinism errors
	ErrSeedMismatch = errors.New("seed mismatch")
	ErrHashMismatch = errors.New("hash mismatch")
)

// NewInvalidParameterError reports a constant whose value breaks a log/sqrt domain
func NewInvalidParameterError(key ConstantKey, value float64) error {
	return fmt.Errorf("%w: %s=%g must be positive", ErrInvalidParameter, key, value)
}

// NewEmptyInputError reports a zero-sample table handed to a consumer
func NewEmptyInputError(consumer string) error {
	return fmt.Errorf("%w: %s received an empty table", ErrEmptyInput, consumer)
}

// Error checking helpers
func IsInvalidParameterError(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

func IsEmptyInputError(err error) bool {
	return errors.Is(err, ErrEmptyInput) || errors.Is(err, ErrInsufficientData)
}
