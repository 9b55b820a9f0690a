package model

import "fmt"

// DimensionMismatchError indicates two inputs with different objective counts.
type DimensionMismatchError struct {
	Expected int // Expected objectives
	Actual   int // Actual objectives
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// InvalidInputError indicates malformed or non-numeric input data.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}
