package hvgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hvgo/internal/wfg"
	"github.com/hupe1980/hvgo/model"
	"github.com/hupe1980/hvgo/rect"
)

var (
	// ErrInvalidInput is returned for malformed fronts and non-numeric values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCapacity is returned when a buffer would grow past its allocation.
	// It signals a sizing bug or an exceeded WithMaxRectangles bound.
	ErrCapacity = errors.New("capacity exceeded")

	// ErrUndefinedZeroObjectives is returned when a front has points but no
	// objectives in decomposition mode.
	ErrUndefinedZeroObjectives = errors.New("decomposition of points with zero objectives is undefined")

	// ErrAllocation is returned when the resource controller refuses the
	// scratch memory a batch needs.
	ErrAllocation = errors.New("scratch allocation refused")
)

// ErrDimensionMismatch indicates a front/reference dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var dm *model.DimensionMismatchError
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	var ii *model.InvalidInputError
	if errors.As(err, &ii) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, wfg.ErrCapacity) || errors.Is(err, rect.ErrCapacity) {
		return fmt.Errorf("%w: %w", ErrCapacity, err)
	}

	return err
}
