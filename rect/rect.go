package rect

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity is returned when an append would exceed the configured maximum length.
	ErrCapacity = errors.New("rect: capacity exceeded")
)

// defaultCapacity is the number of rectangles reserved by New when no hint is given.
const defaultCapacity = 16

// List is a growable list of signed axis-aligned boxes.
//
// All bounds live in a single flat arena: rectangle i occupies
// bounds[i*2*dim : (i+1)*2*dim], lower bounds first, then upper bounds.
// Lower and Upper compute their views from the index on every call, so a
// view taken before a growth must not be retained across Append.
type List struct {
	dim    int
	n      int
	maxLen int // 0 means unbounded
	bounds []float64
	signs  []int8
}

// New creates an empty list of dim-dimensional rectangles with room for
// capacity rectangles before the first growth.
func New(dim, capacity int) *List {
	if dim < 0 {
		dim = 0
	}
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &List{
		dim:    dim,
		bounds: make([]float64, capacity*2*dim),
		signs:  make([]int8, capacity),
	}
}

// Dim returns the number of axes per rectangle.
func (l *List) Dim() int { return l.dim }

// Len returns the number of rectangles in the list.
func (l *List) Len() int { return l.n }

// Cap returns the number of rectangles the list can hold without growing.
func (l *List) Cap() int { return len(l.signs) }

// SetMaxLen bounds the number of rectangles the list may hold. Zero removes the bound.
func (l *List) SetMaxLen(n int) {
	if n < 0 {
		n = 0
	}
	l.maxLen = n
}

// Reset empties the list and switches it to dim-dimensional rectangles.
// The backing storage is kept when it is large enough.
func (l *List) Reset(dim int) {
	if dim < 0 {
		dim = 0
	}
	l.n = 0
	if dim != l.dim {
		l.dim = dim
		need := len(l.signs) * 2 * dim
		if cap(l.bounds) >= need {
			l.bounds = l.bounds[:need]
		} else {
			l.bounds = make([]float64, need)
		}
	}
}

// Truncate drops every rectangle at index n and above.
func (l *List) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < l.n {
		l.n = n
	}
}

// Append adds a rectangle with all bounds set to zero and returns its index.
// Capacity doubles when exhausted; indices stay valid, views do not.
func (l *List) Append(sign int8) (int, error) {
	if l.maxLen > 0 && l.n >= l.maxLen {
		return 0, fmt.Errorf("%w: %d rectangles", ErrCapacity, l.maxLen)
	}
	if l.n == len(l.signs) {
		l.grow()
	}
	i := l.n
	l.n++
	l.signs[i] = sign
	clear(l.bounds[i*2*l.dim : (i+1)*2*l.dim])
	return i, nil
}

func (l *List) grow() {
	newCap := 2 * len(l.signs)
	if newCap == 0 {
		newCap = defaultCapacity
	}
	if l.maxLen > 0 && newCap > l.maxLen {
		newCap = l.maxLen
	}

	signs := make([]int8, newCap)
	copy(signs, l.signs[:l.n])
	bounds := make([]float64, newCap*2*l.dim)
	copy(bounds, l.bounds[:l.n*2*l.dim])

	l.signs = signs
	l.bounds = bounds
}

// Sign returns +1 or -1 for rectangle i.
func (l *List) Sign(i int) int8 { return l.signs[i] }

// Lower returns the lower-bound vector of rectangle i.
func (l *List) Lower(i int) []float64 {
	off := i * 2 * l.dim
	return l.bounds[off : off+l.dim : off+l.dim]
}

// Upper returns the upper-bound vector of rectangle i.
func (l *List) Upper(i int) []float64 {
	off := i*2*l.dim + l.dim
	return l.bounds[off : off+l.dim : off+l.dim]
}

// Stamp sets axis to [lo, hi] on every rectangle in [from, Len()).
func (l *List) Stamp(from, axis int, lo, hi float64) {
	for i := from; i < l.n; i++ {
		off := i * 2 * l.dim
		l.bounds[off+axis] = lo
		l.bounds[off+l.dim+axis] = hi
	}
}

// Volume returns the unsigned volume of rectangle i.
func (l *List) Volume(i int) float64 {
	lo, hi := l.Lower(i), l.Upper(i)
	v := 1.0
	for j := range lo {
		v *= hi[j] - lo[j]
	}
	return v
}

// SignedVolume returns the sum of sign*volume over all rectangles.
func (l *List) SignedVolume() float64 {
	var sum float64
	for i := 0; i < l.n; i++ {
		sum += float64(l.signs[i]) * l.Volume(i)
	}
	return sum
}

// Clone returns a compact copy holding exactly Len() rectangles.
func (l *List) Clone() *List {
	c := &List{
		dim:    l.dim,
		n:      l.n,
		bounds: make([]float64, l.n*2*l.dim),
		signs:  make([]int8, l.n),
	}
	copy(c.bounds, l.bounds[:l.n*2*l.dim])
	copy(c.signs, l.signs[:l.n])
	return c
}

// Rect is a detached copy of one rectangle.
type Rect struct {
	Sign  int8      `json:"sign"`
	Lower []float64 `json:"lower"`
	Upper []float64 `json:"upper"`
}

// Rects copies the list into a slice of detached rectangles.
func (l *List) Rects() []Rect {
	out := make([]Rect, l.n)
	for i := range out {
		out[i] = Rect{
			Sign:  l.signs[i],
			Lower: append([]float64(nil), l.Lower(i)...),
			Upper: append([]float64(nil), l.Upper(i)...),
		}
	}
	return out
}
