package core

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSampleRate is returned by constructors given a sample rate
	// that is not a finite positive number.
	ErrInvalidSampleRate = errors.New("invalid sample rate")

	// ErrInvalidParameter is returned by constructors given a parameter
	// outside its valid range.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// ValidateSampleRate returns an error wrapping ErrInvalidSampleRate unless
// sampleRate is finite and > 0. component prefixes the message.
func ValidateSampleRate(component string, sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%s sample rate must be > 0: %f: %w", component, sampleRate, ErrInvalidSampleRate)
	}
	return nil
}

// ValidatePositive returns an error wrapping ErrInvalidParameter unless v is
// finite and > 0.
func ValidatePositive(component, name string, v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %s must be > 0: %f: %w", component, name, v, ErrInvalidParameter)
	}
	return nil
}

// ValidateFinite returns an error wrapping ErrInvalidParameter if v is NaN or Inf.
func ValidateFinite(component, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %s must be finite: %f: %w", component, name, v, ErrInvalidParameter)
	}
	return nil
}
