// ABOUTME: Typed error taxonomy for the sizing engine
// ABOUTME: Distinguishes validation, configuration, and division failures

package models

import "fmt"

// ValidationError indicates a malformed or out-of-range workload or
// profile field. The engine raises it before any sizing arithmetic runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// ConfigurationError indicates an unsupported redundancy combination or
// a node profile that violates its chassis constraints.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Message
}

// DivisionError indicates a per-node capacity that resolved to zero or
// negative for a dimension, making node sizing impossible. Raised
// instead of letting a division produce Inf or NaN node counts.
type DivisionError struct {
	Dimension string
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("cannot size %s dimension: per-node capacity is zero or negative", e.Dimension)
}
