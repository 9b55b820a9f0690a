package testutil

import (
	"math"
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// UniformPoints generates num points with values in [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([][]float64, num)
	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.Float64()
		}
		points[i] = p
	}
	return points
}

// GridPoints generates num points whose coordinates are integers in [1, levels].
// Small grids produce many ties and duplicates.
func (r *RNG) GridPoints(num, dimensions, levels int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([][]float64, num)
	for i := range points {
		p := make([]float64, dimensions)
		for j := range p {
			p[j] = float64(1 + r.rand.Intn(levels))
		}
		points[i] = p
	}
	return points
}

// SpherePoints generates num mutually non-dominated points on the positive
// orthant of the unit sphere (larger is better).
func (r *RNG) SpherePoints(num, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([][]float64, num)
	for i := range points {
		p := make([]float64, dimensions)
		var norm float64
		for j := range p {
			v := math.Abs(r.rand.NormFloat64())
			p[j] = v
			norm += v * v
		}
		if norm == 0 {
			norm = 1
		}
		inv := 1 / math.Sqrt(norm)
		for j := range p {
			p[j] *= inv
		}
		points[i] = p
	}
	return points
}

// BruteForceHV computes the hypervolume dominated by points relative to
// the origin (larger is better) by coordinate compression: every cell of
// the grid spanned by the distinct coordinates is tested for coverage.
// Cost grows as len(points)^(d+1); keep inputs small.
func BruteForceHV(points [][]float64) float64 {
	if len(points) == 0 || len(points[0]) == 0 {
		return 0
	}
	d := len(points[0])

	axes := make([][]float64, d)
	for a := range axes {
		coords := []float64{0}
		for _, p := range points {
			coords = append(coords, p[a])
		}
		slices.Sort(coords)
		axes[a] = slices.Compact(coords)
	}

	idx := make([]int, d)
	var volume float64
	for {
		// Cell [axes[a][idx[a]], axes[a][idx[a]+1]] on every axis.
		cell := 1.0
		empty := false
		for a := range idx {
			if idx[a]+1 >= len(axes[a]) {
				empty = true
				break
			}
			cell *= axes[a][idx[a]+1] - axes[a][idx[a]]
		}
		if !empty && cell > 0 && covered(points, axes, idx) {
			volume += cell
		}

		a := 0
		for a < d {
			idx[a]++
			if idx[a] < len(axes[a])-1 {
				break
			}
			idx[a] = 0
			a++
		}
		if a == d {
			return volume
		}
	}
}

func covered(points [][]float64, axes [][]float64, idx []int) bool {
	for _, p := range points {
		inside := true
		for a := range idx {
			if p[a] < axes[a][idx[a]+1] {
				inside = false
				break
			}
		}
		if inside {
			return true
		}
	}
	return false
}
