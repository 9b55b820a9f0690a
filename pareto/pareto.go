package pareto

import (
	"errors"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/hvgo/model"
)

// ErrUnsorted is returned by IsDominated under WithCheckSorted when the
// second point set is not in lexicographic order.
var ErrUnsorted = errors.New("pareto: point set is not lexicographically sorted")

// Result is the dominance rank table produced by Find.
type Result struct {
	// K is the number of non-dominated points.
	K int
	// NDPos[i] is the input position of the i-th non-dominated point in
	// lexicographic order for i < K, and -1 for i >= K.
	NDPos []int
	// DRank[i] is the rank among the K survivors of the first point found
	// to dominate input point i, or -1 if point i is non-dominated.
	DRank []int
}

// NonDominated returns the input positions of the non-dominated points.
func (r *Result) NonDominated() []int { return r.NDPos[:r.K] }

// IsDominated reports whether input point i was found to be dominated.
func (r *Result) IsDominated(i int) bool { return r.DRank[i] >= 0 }

// LexicalCompare compares p and q objective by objective from index 0
// upward. The first differing objective decides; smaller sorts first.
func LexicalCompare(p, q []float64) int {
	for j := range p {
		switch {
		case p[j] < q[j]:
			return -1
		case p[j] > q[j]:
			return 1
		}
	}
	return 0
}

// LexicalLess reports whether p sorts strictly before q.
func LexicalLess(p, q []float64) bool {
	return LexicalCompare(p, q) < 0
}

// sense maps a coordinate so that smaller is always better.
type sense bool

func (s sense) at(f model.Front, i, j int) float64 {
	v := f.At(i, j)
	if s {
		return -v
	}
	return v
}

func (s sense) compare(f model.Front, i, k int) int {
	for j := 0; j < f.Objectives; j++ {
		a, b := s.at(f, i, j), s.at(f, k, j)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

// dominatedBy reports whether point i of x is dominated by point k of y.
// With weak set, equal points count as dominated.
func (s sense) dominatedBy(x model.Front, i int, y model.Front, k int, weak bool) bool {
	strict := false
	for j := 0; j < x.Objectives; j++ {
		a, b := s.at(x, i, j), s.at(y, k, j)
		if a < b {
			return false
		}
		if a > b {
			strict = true
		}
	}
	return strict || weak
}

// LexicalSort returns the permutation that sorts the points of f
// lexicographically. The sort is stable: equal points keep input order.
func LexicalSort(f model.Front, optFns ...Option) ([]int, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	o := applyOptions(optFns)
	return lexicalOrder(f, sense(o.maximize)), nil
}

func lexicalOrder(f model.Front, s sense) []int {
	idx := make([]int, f.Points)
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return s.compare(f, a, b)
	})
	return idx
}

// Find identifies the non-dominated points of f.
//
// Points are sorted lexicographically and each point is compared against
// the still-live points before it; the first one that dominates it marks
// it dead. Surviving points are then numbered by rank and recorded
// dominator ranks are remapped to survivor ranks. Worst case O(n² d).
func Find(f model.Front, optFns ...Option) (*Result, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	o := applyOptions(optFns)
	s := sense(o.maximize)

	n := f.Points
	tab := lexicalOrder(f, s) // tab[r] = input position at sorted rank r, -1 once dead

	res := &Result{
		NDPos: make([]int, n),
		DRank: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.NDPos[i] = -1
		res.DRank[i] = -1
	}

	// First dominator by rank in the full sorted list.
	for r := 1; r < n; r++ {
		for rr := 0; rr < r; rr++ {
			if tab[rr] >= 0 && s.dominatedBy(f, tab[r], f, tab[rr], true) {
				res.DRank[tab[r]] = rr
				tab[r] = -1
				break
			}
		}
	}

	for r := 0; r < n; r++ {
		if pos := tab[r]; pos >= 0 {
			res.NDPos[res.K] = pos
			tab[r] = res.K
			res.K++
		}
	}

	for i := 0; i < n; i++ {
		if res.DRank[i] >= 0 {
			res.DRank[i] = tab[res.DRank[i]]
		}
	}

	return res, nil
}

// IsDominated tests every point of a against the lexicographically sorted
// point set b. For each point of a it reports whether some point of b
// strictly dominates it and, if so, the position in b of the first one.
//
// The scan over b stops as soon as b's first objective is worse than the
// point's, which is only correct when b is sorted. Pass WithCheckSorted to
// verify that.
func IsDominated(a, b model.Front, optFns ...Option) ([]bool, []int, error) {
	if err := a.Validate(); err != nil {
		return nil, nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, nil, err
	}
	if a.Points > 0 && b.Points > 0 && a.Objectives != b.Objectives {
		return nil, nil, &model.DimensionMismatchError{Expected: a.Objectives, Actual: b.Objectives}
	}

	o := applyOptions(optFns)
	s := sense(o.maximize)

	if o.checkSorted {
		for k := 1; k < b.Points; k++ {
			if s.compare(b, k-1, k) > 0 {
				return nil, nil, ErrUnsorted
			}
		}
	}

	isdom := make([]bool, a.Points)
	drank := make([]int, a.Points)

	for i := 0; i < a.Points; i++ {
		drank[i] = -1
		if a.Objectives == 0 {
			continue
		}
		first := s.at(a, i, 0)
		for k := 0; k < b.Points; k++ {
			if s.at(b, k, 0) > first {
				break
			}
			if s.dominatedBy(a, i, b, k, false) {
				isdom[i] = true
				drank[i] = k
				break
			}
		}
	}

	return isdom, drank, nil
}

// NonDominatedMask returns the input positions of the non-dominated points
// of res as a bitmap.
func NonDominatedMask(res *Result) *roaring.Bitmap {
	bm := roaring.New()
	for _, pos := range res.NonDominated() {
		bm.Add(uint32(pos))
	}
	return bm
}
