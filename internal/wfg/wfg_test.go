package wfg

import (
	"math"
	"testing"

	"github.com/hupe1980/hvgo/rect"
	"github.com/hupe1980/hvgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFront(points [][]float64) *Front {
	d := 0
	if len(points) > 0 {
		d = len(points[0])
	}
	f := NewFront(len(points), d)
	for i, p := range points {
		f.Set(i, p)
	}
	return f
}

func computeHV(t *testing.T, points [][]float64) float64 {
	t.Helper()
	f := newFront(points)
	c := NewContext(f.NPoints, f.N)
	require.NoError(t, c.Reset(f.N))
	v, err := c.HV(f)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Depth())
	return v
}

func computeRects(t *testing.T, points [][]float64) *rect.List {
	t.Helper()
	f := newFront(points)
	c := NewContext(f.NPoints, f.N)
	require.NoError(t, c.Reset(f.N))
	out := rect.New(f.N, 4)
	require.NoError(t, c.Decompose(f, out))
	assert.Equal(t, 0, c.Depth())
	return out
}

func relErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

func TestDominates2Way(t *testing.T) {
	tests := []struct {
		name     string
		p, q     []float64
		k        int
		expected int
	}{
		{"PDominates", []float64{2, 2, 2}, []float64{1, 2, 1}, 2, PDominates},
		{"QDominates", []float64{1, 1, 1}, []float64{1, 2, 1}, 2, QDominates},
		{"Equal", []float64{1, 2, 3}, []float64{1, 2, 3}, 2, Equal},
		{"Incomparable", []float64{3, 1, 2}, []float64{1, 3, 2}, 2, Incomparable},
		{"RestrictedRange", []float64{1, 2, 9}, []float64{1, 2, 0}, 1, Equal},
		{"HighIndexDecides", []float64{0, 5, 1}, []float64{1, 5, 0}, 2, Incomparable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Dominates2Way(tt.p, tt.q, tt.k))
		})
	}
}

func TestDominates1Way(t *testing.T) {
	assert.True(t, Dominates1Way([]float64{2, 2}, []float64{1, 2}, 1))
	assert.True(t, Dominates1Way([]float64{2, 2}, []float64{2, 2}, 1))
	assert.False(t, Dominates1Way([]float64{2, 1}, []float64{1, 2}, 1))
	assert.True(t, Dominates1Way([]float64{2, 1}, []float64{1, 2}, 0))
}

func TestClosedFormsMatchGeneric(t *testing.T) {
	rng := testutil.NewRNG(7)

	for d := 1; d <= 6; d++ {
		for trial := 0; trial < 50; trial++ {
			var pts [][]float64
			if trial%2 == 0 {
				pts = rng.UniformPoints(4, d)
			} else {
				pts = rng.GridPoints(4, d, 3)
			}
			p, q, r, s := pts[0], pts[1], pts[2], pts[3]

			assert.InDelta(t, InclHVGeneric(p), InclHV(p), 1e-12)
			assert.InDelta(t, InclHVGeneric(p, q), InclHV2(p, q), 1e-12)
			assert.InDelta(t, InclHVGeneric(p, q, r), InclHV3(p, q, r), 1e-12)
			assert.InDelta(t, InclHVGeneric(p, q, r, s), InclHV4(p, q, r, s), 1e-12, "d=%d trial=%d", d, trial)
		}
	}
}

func TestClosedFormsExactOnIntegers(t *testing.T) {
	p := []float64{3, 1, 2}
	q := []float64{1, 3, 2}
	r := []float64{2, 2, 3}
	s := []float64{1, 1, 4}

	assert.Equal(t, InclHVGeneric(p, q, r, s), InclHV4(p, q, r, s))
	assert.Equal(t, testutil.BruteForceHV([][]float64{p, q, r, s}), InclHV4(p, q, r, s))
}

func TestHVScenarios(t *testing.T) {
	t.Run("Staircase2D", func(t *testing.T) {
		assert.Equal(t, 13.0, computeHV(t, [][]float64{{1, 5}, {3, 3}, {5, 1}}))
	})
	t.Run("SingleCube", func(t *testing.T) {
		assert.Equal(t, 8.0, computeHV(t, [][]float64{{2, 2, 2}}))
	})
	t.Run("Duplicates", func(t *testing.T) {
		assert.Equal(t, 1.0, computeHV(t, [][]float64{{1, 1}, {1, 1}}))
	})
	t.Run("Dominated", func(t *testing.T) {
		assert.Equal(t, 9.0, computeHV(t, [][]float64{{3, 3}, {1, 1}}))
	})
	t.Run("Empty", func(t *testing.T) {
		c := NewContext(0, 2)
		require.NoError(t, c.Reset(2))
		v, err := c.HV(NewFront(0, 2))
		require.NoError(t, err)
		assert.Equal(t, 0.0, v)
	})
	t.Run("LongStaircase2D", func(t *testing.T) {
		pts := [][]float64{{1, 6}, {2, 5}, {3, 4}, {4, 3}, {5, 2}, {6, 1}}
		assert.Equal(t, 21.0, computeHV(t, pts))
	})
}

func TestHVAgainstBruteForce(t *testing.T) {
	rng := testutil.NewRNG(11)

	cases := []struct {
		name   string
		n, d   int
		points func(n, d int) [][]float64
	}{
		{"Sphere2D", 30, 2, rng.SpherePoints},
		{"Sphere3D", 20, 3, rng.SpherePoints},
		{"Sphere4D", 12, 4, rng.SpherePoints},
		{"Sphere5D", 9, 5, rng.SpherePoints},
		{"Uniform3D", 25, 3, rng.UniformPoints},
		{"Uniform4D", 14, 4, rng.UniformPoints},
		{"Grid3D", 25, 3, func(n, d int) [][]float64 { return rng.GridPoints(n, d, 4) }},
		{"Grid4D", 15, 4, func(n, d int) [][]float64 { return rng.GridPoints(n, d, 3) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for trial := 0; trial < 5; trial++ {
				pts := tc.points(tc.n, tc.d)
				want := testutil.BruteForceHV(pts)
				got := computeHV(t, pts)
				assert.Less(t, relErr(got, want), 1e-9, "trial %d: got %v want %v", trial, got, want)
			}
		})
	}
}

func TestHVPermutationInvariance(t *testing.T) {
	rng := testutil.NewRNG(3)

	for d := 2; d <= 5; d++ {
		pts := rng.SpherePoints(25, d)
		base := computeHV(t, pts)

		for trial := 0; trial < 5; trial++ {
			perm := rng.Perm(len(pts))
			shuffled := make([][]float64, len(pts))
			for i, j := range perm {
				shuffled[i] = pts[j]
			}
			assert.Less(t, relErr(computeHV(t, shuffled), base), 1e-12, "d=%d", d)
		}
	}
}

func TestHVMonotone(t *testing.T) {
	rng := testutil.NewRNG(5)
	pts := rng.UniformPoints(30, 4)

	prev := 0.0
	for k := 1; k <= len(pts); k++ {
		v := computeHV(t, pts[:k])
		assert.GreaterOrEqual(t, v, prev-1e-12, "k=%d", k)
		prev = v
	}
}

func TestHVDominatedPointUnchanged3D(t *testing.T) {
	rng := testutil.NewRNG(9)
	pts := rng.SpherePoints(12, 3)
	base := computeHV(t, pts)

	dominated := []float64{pts[0][0] / 2, pts[0][1] / 2, pts[0][2] / 2}
	with := append(append([][]float64{}, pts...), dominated)
	assert.Less(t, relErr(computeHV(t, with), base), 1e-12)
}

func TestDecomposeSoundness(t *testing.T) {
	rng := testutil.NewRNG(13)

	for d := 2; d <= 5; d++ {
		for _, n := range []int{1, 2, 3, 4, 5, 8, 20, 60, 100} {
			pts := rng.SpherePoints(n, d)
			want := computeHV(t, pts)
			out := computeRects(t, pts)

			assert.Greater(t, out.Len(), 0)
			assert.Less(t, relErr(out.SignedVolume(), want), 1e-9, "d=%d n=%d", d, n)
		}
	}
}

func TestDecomposeWithTies(t *testing.T) {
	rng := testutil.NewRNG(17)

	for d := 3; d <= 4; d++ {
		pts := rng.GridPoints(30, d, 3)
		want := testutil.BruteForceHV(pts)
		out := computeRects(t, pts)
		assert.Less(t, relErr(out.SignedVolume(), want), 1e-9, "d=%d", d)
	}
}

func TestDecomposeClosedFormRects(t *testing.T) {
	out := computeRects(t, [][]float64{{1, 2}, {2, 1}})

	require.Equal(t, 3, out.Len())
	var signs []int8
	for i := 0; i < out.Len(); i++ {
		signs = append(signs, out.Sign(i))
		assert.Equal(t, []float64{0, 0}, out.Lower(i))
	}
	assert.ElementsMatch(t, []int8{1, 1, -1}, signs)
	assert.Equal(t, 3.0, out.SignedVolume())
}

func TestDecomposeStaircaseStrips(t *testing.T) {
	pts := [][]float64{{1, 6}, {2, 5}, {3, 4}, {4, 3}, {5, 2}, {6, 1}}
	out := computeRects(t, pts)

	require.Equal(t, 6, out.Len())
	assert.Equal(t, []float64{0, 0}, out.Lower(0))
	assert.Equal(t, []float64{1, 6}, out.Upper(0))
	assert.Equal(t, []float64{5, 0}, out.Lower(5))
	assert.Equal(t, []float64{6, 1}, out.Upper(5))
	assert.Equal(t, 21.0, out.SignedVolume())
}

func TestDecomposeRectangleDimensionTooSmall(t *testing.T) {
	f := newFront([][]float64{{1, 2, 3}})
	c := NewContext(1, 3)
	require.NoError(t, c.Reset(3))

	err := c.Decompose(f, rect.New(2, 1))
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestDecomposeBoundedList(t *testing.T) {
	rng := testutil.NewRNG(19)
	f := newFront(rng.SpherePoints(30, 3))
	c := NewContext(30, 3)
	require.NoError(t, c.Reset(3))

	out := rect.New(3, 1)
	out.SetMaxLen(5)
	err := c.Decompose(f, out)
	assert.ErrorIs(t, err, rect.ErrCapacity)
}
