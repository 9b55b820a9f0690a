package wfg

// Larger objective values are better throughout this package.

func beats(x, y float64) bool { return x > y }

// worse returns the component that does not beat the other.
func worse(x, y float64) float64 {
	if beats(y, x) {
		return x
	}
	return y
}

// Dominance outcomes of Dominates2Way.
const (
	Incomparable = 0
	PDominates   = -1
	QDominates   = 1
	Equal        = 2
)

// Dominates2Way compares p and q on objectives k down to 0.
// It returns PDominates, QDominates, Equal or Incomparable.
func Dominates2Way(p, q []float64, k int) int {
	for i := k; i >= 0; i-- {
		if beats(p[i], q[i]) {
			for j := i - 1; j >= 0; j-- {
				if beats(q[j], p[j]) {
					return Incomparable
				}
			}
			return PDominates
		} else if beats(q[i], p[i]) {
			for j := i - 1; j >= 0; j-- {
				if beats(p[j], q[j]) {
					return Incomparable
				}
			}
			return QDominates
		}
	}
	return Equal
}

// Dominates1Way reports whether p dominates or equals q on objectives 0..k.
// The caller must already know that q does not dominate p.
func Dominates1Way(p, q []float64, k int) bool {
	for i := k; i >= 0; i-- {
		if beats(q[i], p[i]) {
			return false
		}
	}
	return true
}
