package wfg

import (
	"errors"
	"fmt"
)

// ErrCapacity is the sentinel wrapped by every CapacityError.
var ErrCapacity = errors.New("wfg: capacity exceeded")

// CapacityError reports an attempt to grow a buffer past its allocation.
// It always indicates a sizing bug in the caller, never bad user input.
type CapacityError struct {
	What      string
	Requested int
	Allocated int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("wfg: %s %d exceeds allocated capacity %d", e.What, e.Requested, e.Allocated)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }

// Point is a view over one objective vector.
// len(Objectives) is the active arity, cap(Objectives) the allocated one.
type Point struct {
	Objectives []float64
}

// Front is a fixed-capacity buffer of points with an active point count
// and an active arity. Resizing only moves the logical cursors.
type Front struct {
	Points       []Point
	NPoints      int
	NPointsAlloc int
	N            int
	NAlloc       int
}

// NewFront allocates a front of nPoints points with nObjectives objectives each.
// All objectives share one contiguous slab.
func NewFront(nPoints, nObjectives int) *Front {
	if nPoints < 0 {
		nPoints = 0
	}
	if nObjectives < 0 {
		nObjectives = 0
	}
	slab := make([]float64, nPoints*nObjectives)
	points := make([]Point, nPoints)
	for i := range points {
		lo := i * nObjectives
		hi := lo + nObjectives
		points[i].Objectives = slab[lo:hi:hi]
	}
	return &Front{
		Points:       points,
		NPoints:      nPoints,
		NPointsAlloc: nPoints,
		N:            nObjectives,
		NAlloc:       nObjectives,
	}
}

// Resize sets the active point count and arity without reallocating.
func (f *Front) Resize(nPoints, nObjectives int) error {
	if nPoints < 0 || nPoints > f.NPointsAlloc {
		return &CapacityError{What: "point count", Requested: nPoints, Allocated: f.NPointsAlloc}
	}
	if nObjectives < 0 || nObjectives > f.NAlloc {
		return &CapacityError{What: "objective count", Requested: nObjectives, Allocated: f.NAlloc}
	}
	f.NPoints = nPoints
	if nObjectives != f.N {
		for i := range f.Points {
			f.Points[i].Objectives = f.Points[i].Objectives[:nObjectives]
		}
		f.N = nObjectives
	}
	return nil
}

// Set copies src into point i; len(src) must equal the active arity.
func (f *Front) Set(i int, src []float64) {
	copy(f.Points[i].Objectives, src)
}
