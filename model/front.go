package model

import (
	"fmt"
	"math"
)

// Layout describes how a Front's values are laid out in Data.
type Layout uint8

const (
	// RowMajor stores point i at Data[i*Objectives : (i+1)*Objectives].
	RowMajor Layout = iota
	// ColMajor stores objective j at Data[j*Points : (j+1)*Points].
	ColMajor
)

func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return fmt.Sprintf("Unknown(%d)", l)
	}
}

// Front is a dense set of points in objective space.
type Front struct {
	Points     int
	Objectives int
	Data       []float64
	Layout     Layout
}

// FromRows builds a row-major Front from one slice per point.
// All rows must have the same length; Validate reports ragged input.
func FromRows(rows [][]float64) Front {
	if len(rows) == 0 {
		return Front{}
	}
	d := len(rows[0])
	data := make([]float64, 0, len(rows)*d)
	for _, r := range rows {
		if len(r) != d {
			// Keep the shape so Validate can report it.
			return Front{Points: len(rows), Objectives: d, Data: nil}
		}
		data = append(data, r...)
	}
	return Front{Points: len(rows), Objectives: d, Data: data}
}

// At returns objective j of point i.
func (f Front) At(i, j int) float64 {
	if f.Layout == ColMajor {
		return f.Data[j*f.Points+i]
	}
	return f.Data[i*f.Objectives+j]
}

// Row copies point i into dst and returns it.
func (f Front) Row(i int, dst []float64) []float64 {
	dst = dst[:0]
	for j := 0; j < f.Objectives; j++ {
		dst = append(dst, f.At(i, j))
	}
	return dst
}

// Rows returns a point-major copy of the front.
func (f Front) Rows() [][]float64 {
	rows := make([][]float64, f.Points)
	for i := range rows {
		rows[i] = f.Row(i, make([]float64, 0, f.Objectives))
	}
	return rows
}

// Validate checks the shape of the front and rejects non-numeric values.
func (f Front) Validate() error {
	if f.Points < 0 || f.Objectives < 0 {
		return &InvalidInputError{Reason: fmt.Sprintf("negative shape %dx%d", f.Points, f.Objectives)}
	}
	if len(f.Data) != f.Points*f.Objectives {
		return &InvalidInputError{Reason: fmt.Sprintf("have %d values for a %dx%d front", len(f.Data), f.Points, f.Objectives)}
	}
	for k, v := range f.Data {
		if math.IsNaN(v) {
			return &InvalidInputError{Reason: fmt.Sprintf("value %d is not a number", k)}
		}
	}
	return nil
}

// Reference is a reference point; nil stands for the origin.
type Reference []float64

// Coord returns coordinate j, treating a nil reference as the origin.
func (r Reference) Coord(j int) float64 {
	if r == nil {
		return 0
	}
	return r[j]
}

// Check verifies that the reference matches d objectives.
func (r Reference) Check(d int) error {
	if r == nil {
		return nil
	}
	if len(r) != d {
		return &DimensionMismatchError{Expected: d, Actual: len(r)}
	}
	for _, v := range r {
		if math.IsNaN(v) {
			return &InvalidInputError{Reason: "reference point is not a number"}
		}
	}
	return nil
}
