package wfg

import "slices"

// Context carries the recursion state of one hypervolume computation:
// the active objective count, the number of leading points that need no
// resorting, and a stack of auxiliary fronts indexed by depth.
//
// A Context is not safe for concurrent use. Give every goroutine its own.
type Context struct {
	n    int // active objective count
	safe int // leading points of the current front that need no full sort
	fr   int // current depth into fs

	maxm int
	maxn int
	fs   []*Front
}

// NewContext preallocates scratch for fronts of up to maxm points and maxn
// objectives. Level i of the auxiliary stack holds maxm points of arity
// maxn-i-1; there are maxn-2 levels.
func NewContext(maxm, maxn int) *Context {
	if maxm < 0 {
		maxm = 0
	}
	if maxn < 0 {
		maxn = 0
	}
	depth := max(maxn-2, 0)
	fs := make([]*Front, depth)
	for i := range fs {
		fs[i] = NewFront(maxm, maxn-i-1)
	}
	return &Context{
		maxm: maxm,
		maxn: maxn,
		fs:   fs,
	}
}

// ScratchBytes returns the number of objective bytes NewContext(maxm, maxn)
// allocates for its auxiliary stack.
func ScratchBytes(maxm, maxn int) int64 {
	var total int64
	for i := 0; i < maxn-2; i++ {
		total += int64(maxm) * int64(maxn-i-1) * 8
	}
	return total
}

// MaxPoints returns the point capacity of the context.
func (c *Context) MaxPoints() int { return c.maxm }

// MaxObjectives returns the objective capacity of the context.
func (c *Context) MaxObjectives() int { return c.maxn }

// Reset prepares the context for a new top-level front of arity n.
func (c *Context) Reset(n int) error {
	if n < 0 || n > c.maxn {
		return &CapacityError{What: "objective count", Requested: n, Allocated: c.maxn}
	}
	c.n = n
	c.safe = 0
	c.fr = 0
	return nil
}

// Depth returns the current recursion depth. It is zero between top-level calls.
func (c *Context) Depth() int { return c.fr }

// greater orders points worsening in the last active objective,
// ties broken on earlier objectives.
func (c *Context) greater(p, q Point) int {
	for i := c.n - 1; i >= 0; i-- {
		if beats(p.Objectives[i], q.Objectives[i]) {
			return -1
		} else if beats(q.Objectives[i], p.Objectives[i]) {
			return 1
		}
	}
	return 0
}

// greaterAbbrev orders points worsening in the penultimate active objective.
func (c *Context) greaterAbbrev(p, q Point) int {
	for i := c.n - 2; i >= 0; i-- {
		if beats(p.Objectives[i], q.Objectives[i]) {
			return -1
		} else if beats(q.Objectives[i], p.Objectives[i]) {
			return 1
		}
	}
	return 0
}

// makeDominatedBit writes ps[0:p] bounded by ps[p] into the auxiliary
// front at the current depth, drops dominated and duplicate points, sets
// safe and advances the depth.
func (c *Context) makeDominatedBit(ps *Front, p int) error {
	if c.fr >= len(c.fs) {
		return &CapacityError{What: "recursion depth", Requested: c.fr + 1, Allocated: len(c.fs)}
	}
	fs := c.fs[c.fr]
	if p > fs.NPointsAlloc {
		return &CapacityError{What: "point count", Requested: p, Allocated: fs.NPointsAlloc}
	}
	if c.n > fs.NAlloc {
		return &CapacityError{What: "objective count", Requested: c.n, Allocated: fs.NAlloc}
	}

	n := c.n
	pts := fs.Points
	bound := ps.Points[p].Objectives

	// Points tied with the bound on the last objective go to [0, l),
	// strictly worse ones to [l, p).
	l := 0
	u := p - 1
	for i := p - 1; i >= 0; i-- {
		src := ps.Points[i].Objectives
		var dst []float64
		if beats(bound[n-1], src[n-1]) {
			dst = pts[u].Objectives
			dst[n-1] = src[n-1]
			u--
		} else {
			dst = pts[l].Objectives
			dst[n-1] = bound[n-1]
			l++
		}
		for j := 0; j < n-1; j++ {
			dst[j] = worse(bound[j], src[j])
		}
	}

	// Within [0, l) the last objective is equal, so it is ignored.
	np := 1
	for i := 1; i < l; i++ {
		j := 0
		for j < np {
			switch Dominates2Way(pts[i].Objectives, pts[j].Objectives, n-2) {
			case Incomparable:
				j++
			case PDominates:
				// i cannot be dominated by any other promoted point: swap it
				// into j and drop whatever else it dominates.
				pts[j], pts[i] = pts[i], pts[j]
				for j < np-1 && Dominates1Way(pts[j].Objectives, pts[np-1].Objectives, n-1) {
					np--
				}
				k := j + 1
				for k < np {
					if Dominates1Way(pts[j].Objectives, pts[k].Objectives, n-2) {
						np--
						pts[k], pts[np] = pts[np], pts[k]
					} else {
						k++
					}
				}
				j = np + 1
			default:
				j = np + 1
			}
		}
		if j == np {
			pts[np], pts[i] = pts[i], pts[np]
			np++
		}
	}

	// Points in [l, p) cannot dominate points from [0, l).
	safe := min(l, np)
	for i := l; i < p; i++ {
		j := 0
		for j < safe {
			if Dominates1Way(pts[j].Objectives, pts[i].Objectives, n-2) {
				j = np + 1
			} else {
				j++
			}
		}
		for j < np {
			switch Dominates2Way(pts[i].Objectives, pts[j].Objectives, n-1) {
			case Incomparable:
				j++
			case PDominates:
				pts[j], pts[i] = pts[i], pts[j]
				for j < np-1 && Dominates1Way(pts[j].Objectives, pts[np-1].Objectives, n-1) {
					np--
				}
				k := j + 1
				for k < np {
					if Dominates1Way(pts[j].Objectives, pts[k].Objectives, n-1) {
						np--
						pts[k], pts[np] = pts[np], pts[k]
					} else {
						k++
					}
				}
				j = np + 1
			default:
				j = np + 1
			}
		}
		if j == np {
			pts[np], pts[i] = pts[i], pts[np]
			np++
		}
	}

	fs.NPoints = np
	fs.N = n
	c.safe = safe
	c.fr++
	return nil
}

// hv2 returns the hypervolume of ps[0:k] in two objectives.
// The points must be sorted improving in the first objective.
func hv2(ps *Front, k int) float64 {
	pts := ps.Points
	volume := pts[0].Objectives[0] * pts[0].Objectives[1]
	for i := 1; i < k; i++ {
		volume += pts[i].Objectives[1] * (pts[i].Objectives[0] - pts[i-1].Objectives[0])
	}
	return volume
}

// exclhv returns the exclusive hypervolume of ps[p] relative to ps[0:p].
func (c *Context) exclhv(ps *Front, p int) (float64, error) {
	if err := c.makeDominatedBit(ps, p); err != nil {
		return 0, err
	}
	incl := InclHV(ps.Points[p].Objectives[:c.n])
	sub, err := c.HV(c.fs[c.fr-1])
	c.fr--
	if err != nil {
		return 0, err
	}
	return incl - sub, nil
}

// HV returns the hypervolume of ps[0:NPoints] over the active objectives.
// Points must be translated so that the reference is the origin and
// larger values are better. ps is permuted in place.
func (c *Context) HV(ps *Front) (float64, error) {
	n := c.n
	pts := ps.Points
	switch ps.NPoints {
	case 0:
		return 0, nil
	case 1:
		return InclHV(pts[0].Objectives[:n]), nil
	case 2:
		return InclHV2(pts[0].Objectives[:n], pts[1].Objectives[:n]), nil
	case 3:
		return InclHV3(pts[0].Objectives[:n], pts[1].Objectives[:n], pts[2].Objectives[:n]), nil
	case 4:
		return InclHV4(pts[0].Objectives[:n], pts[1].Objectives[:n], pts[2].Objectives[:n], pts[3].Objectives[:n]), nil
	}

	safe := c.sort(ps)
	if n == 2 {
		return hv2(ps, ps.NPoints), nil
	}

	var (
		volume float64
		start  int
	)
	if n == 3 && safe > 0 {
		volume = pts[0].Objectives[2] * hv2(ps, safe)
		start = safe
	} else {
		volume = InclHV4(pts[0].Objectives[:n], pts[1].Objectives[:n], pts[2].Objectives[:n], pts[3].Objectives[:n])
		start = 4
	}

	c.n--
	defer func() { c.n++ }()
	for i := start; i < ps.NPoints; i++ {
		// Dominated points are dropped later by makeDominatedBit.
		ex, err := c.exclhv(ps, i)
		if err != nil {
			return 0, err
		}
		volume += pts[i].Objectives[c.n] * ex
	}
	return volume, nil
}

// sort orders ps[safe:] worsening in the last objective and, when more than
// two objectives are active, ps[:safe] worsening in the penultimate one.
// It returns the safe count in effect for ps.
func (c *Context) sort(ps *Front) int {
	safe := c.safe
	slices.SortFunc(ps.Points[safe:ps.NPoints], c.greater)
	if c.n > 2 {
		// Not required for correctness, but it improves pruning downstream.
		slices.SortFunc(ps.Points[:safe], c.greaterAbbrev)
	}
	return safe
}
