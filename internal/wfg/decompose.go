package wfg

import "github.com/hupe1980/hvgo/rect"

// Decompose appends to out a signed set of rectangles whose signed volume
// sum equals HV(ps). It follows the same recursion as HV; rectangles are
// filled on the active objectives and the remaining axes are stamped by
// the enclosing levels. out.Dim() must be at least the active arity.
func (c *Context) Decompose(ps *Front, out *rect.List) error {
	if out.Dim() < c.n {
		return &CapacityError{What: "rectangle dimension", Requested: c.n, Allocated: out.Dim()}
	}
	return c.decompose(ps, 1, out)
}

func (c *Context) decompose(ps *Front, sign int8, out *rect.List) error {
	n := c.n
	pts := ps.Points
	if ps.NPoints <= 4 {
		return inclusionRects(pts[:ps.NPoints], n, sign, out)
	}

	safe := c.sort(ps)
	if n == 2 {
		return stripRects(pts[:ps.NPoints], sign, out)
	}

	start := 4
	if n == 3 && safe > 0 {
		from := out.Len()
		if err := stripRects(pts[:safe], sign, out); err != nil {
			return err
		}
		out.Stamp(from, 2, 0, pts[0].Objectives[2])
		start = safe
	} else if err := inclusionRects(pts[:4], n, sign, out); err != nil {
		return err
	}

	c.n--
	defer func() { c.n++ }()
	for i := start; i < ps.NPoints; i++ {
		if err := c.exclRects(ps, i, sign, out); err != nil {
			return err
		}
	}
	return nil
}

// exclRects emits the slab of ps[p] that is not covered by ps[0:p]: its own
// box with the current sign, the dominated bit with the opposite sign, all
// stamped with [0, z] on the sliced-off objective.
func (c *Context) exclRects(ps *Front, p int, sign int8, out *rect.List) error {
	n := c.n
	obj := ps.Points[p].Objectives
	from := out.Len()

	i, err := out.Append(sign)
	if err != nil {
		return err
	}
	copy(out.Upper(i)[:n], obj[:n])

	if err := c.makeDominatedBit(ps, p); err != nil {
		return err
	}
	err = c.decompose(c.fs[c.fr-1], -sign, out)
	c.fr--
	if err != nil {
		return err
	}

	out.Stamp(from, n, 0, obj[n])
	return nil
}

// inclusionRects emits one rectangle per non-empty subset of points, with
// the component-wise worst corner and alternating sign.
func inclusionRects(points []Point, n int, sign int8, out *rect.List) error {
	k := len(points)
	for mask := 1; mask < 1<<k; mask++ {
		i, err := out.Append(sign * subsetSign(mask))
		if err != nil {
			return err
		}
		upper := out.Upper(i)
		first := true
		for j := 0; j < k; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			obj := points[j].Objectives
			if first {
				copy(upper[:n], obj[:n])
				first = false
				continue
			}
			for a := 0; a < n; a++ {
				upper[a] = worse(upper[a], obj[a])
			}
		}
	}
	return nil
}

// stripRects emits the 2-D staircase of points sorted improving in the
// first objective as one strip per point.
func stripRects(points []Point, sign int8, out *rect.List) error {
	prev := 0.0
	for _, p := range points {
		i, err := out.Append(sign)
		if err != nil {
			return err
		}
		lower, upper := out.Lower(i), out.Upper(i)
		lower[0] = prev
		upper[0] = p.Objectives[0]
		upper[1] = p.Objectives[1]
		prev = p.Objectives[0]
	}
	return nil
}
