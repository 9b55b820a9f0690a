package wfg

import "math/bits"

// Closed forms for the hypervolume of up to four points. All arguments
// must share the same length, which is taken as the active arity.

// InclHV returns the inclusive hypervolume of p.
func InclHV(p []float64) float64 {
	volume := 1.0
	for _, v := range p {
		volume *= v
	}
	return volume
}

// InclHV2 returns the hypervolume of {p, q}.
func InclHV2(p, q []float64) float64 {
	vp := 1.0
	vq := 1.0
	vpq := 1.0
	for i := range p {
		vp *= p[i]
		vq *= q[i]
		vpq *= worse(p[i], q[i])
	}
	return vp + vq - vpq
}

// InclHV3 returns the hypervolume of {p, q, r}.
func InclHV3(p, q, r []float64) float64 {
	vp, vq, vr := 1.0, 1.0, 1.0
	vpq, vpr, vqr := 1.0, 1.0, 1.0
	vpqr := 1.0
	for i := range p {
		vp *= p[i]
		vq *= q[i]
		vr *= r[i]
		if beats(p[i], q[i]) {
			if beats(q[i], r[i]) {
				vpq *= q[i]
				vpr *= r[i]
				vqr *= r[i]
				vpqr *= r[i]
			} else {
				vpq *= q[i]
				vpr *= worse(p[i], r[i])
				vqr *= q[i]
				vpqr *= q[i]
			}
		} else if beats(p[i], r[i]) {
			vpq *= p[i]
			vpr *= r[i]
			vqr *= r[i]
			vpqr *= r[i]
		} else {
			vpq *= p[i]
			vpr *= p[i]
			vqr *= worse(q[i], r[i])
			vpqr *= p[i]
		}
	}
	return vp + vq + vr - vpq - vpr - vqr + vpqr
}

// InclHV4 returns the hypervolume of {p, q, r, s}.
func InclHV4(p, q, r, s []float64) float64 {
	vp, vq, vr, vs := 1.0, 1.0, 1.0, 1.0
	vpq, vpr, vps, vqr, vqs, vrs := 1.0, 1.0, 1.0, 1.0, 1.0, 1.0
	vpqr, vpqs, vprs, vqrs := 1.0, 1.0, 1.0, 1.0
	vpqrs := 1.0
	for i := range p {
		vp *= p[i]
		vq *= q[i]
		vr *= r[i]
		vs *= s[i]
		if beats(p[i], q[i]) {
			if beats(q[i], r[i]) {
				if beats(r[i], s[i]) {
					vpq *= q[i]
					vpr *= r[i]
					vps *= s[i]
					vqr *= r[i]
					vqs *= s[i]
					vrs *= s[i]
					vpqr *= r[i]
					vpqs *= s[i]
					vprs *= s[i]
					vqrs *= s[i]
					vpqrs *= s[i]
				} else {
					z1 := worse(q[i], s[i])
					vpq *= q[i]
					vpr *= r[i]
					vps *= worse(p[i], s[i])
					vqr *= r[i]
					vqs *= z1
					vrs *= r[i]
					vpqr *= r[i]
					vpqs *= z1
					vprs *= r[i]
					vqrs *= r[i]
					vpqrs *= r[i]
				}
			} else if beats(q[i], s[i]) {
				vpq *= q[i]
				vpr *= worse(p[i], r[i])
				vps *= s[i]
				vqr *= q[i]
				vqs *= s[i]
				vrs *= s[i]
				vpqr *= q[i]
				vpqs *= s[i]
				vprs *= s[i]
				vqrs *= s[i]
				vpqrs *= s[i]
			} else {
				z1 := worse(p[i], r[i])
				vpq *= q[i]
				vpr *= z1
				vps *= worse(p[i], s[i])
				vqr *= q[i]
				vqs *= q[i]
				vrs *= worse(r[i], s[i])
				vpqr *= q[i]
				vpqs *= q[i]
				vprs *= worse(z1, s[i])
				vqrs *= q[i]
				vpqrs *= q[i]
			}
		} else if beats(q[i], r[i]) {
			if beats(p[i], s[i]) {
				z1 := worse(p[i], r[i])
				z2 := worse(r[i], s[i])
				vpq *= p[i]
				vpr *= z1
				vps *= s[i]
				vqr *= r[i]
				vqs *= s[i]
				vrs *= z2
				vpqr *= z1
				vpqs *= s[i]
				vprs *= z2
				vqrs *= z2
				vpqrs *= z2
			} else {
				z1 := worse(p[i], r[i])
				z2 := worse(r[i], s[i])
				vpq *= p[i]
				vpr *= z1
				vps *= p[i]
				vqr *= r[i]
				vqs *= worse(q[i], s[i])
				vrs *= z2
				vpqr *= z1
				vpqs *= p[i]
				vprs *= z1
				vqrs *= z2
				vpqrs *= z1
			}
		} else if beats(p[i], s[i]) {
			vpq *= p[i]
			vpr *= p[i]
			vps *= s[i]
			vqr *= q[i]
			vqs *= s[i]
			vrs *= s[i]
			vpqr *= p[i]
			vpqs *= s[i]
			vprs *= s[i]
			vqrs *= s[i]
			vpqrs *= s[i]
		} else {
			z1 := worse(q[i], s[i])
			vpq *= p[i]
			vpr *= p[i]
			vps *= p[i]
			vqr *= q[i]
			vqs *= z1
			vrs *= worse(r[i], s[i])
			vpqr *= p[i]
			vpqs *= p[i]
			vprs *= p[i]
			vqrs *= z1
			vpqrs *= p[i]
		}
	}
	return vp + vq + vr + vs - vpq - vpr - vps - vqr - vqs - vrs + vpqr + vpqs + vprs + vqrs - vpqrs
}

// InclHVGeneric evaluates the full 2^k inclusion-exclusion sum over points.
// It is the slow reference the unrolled forms are checked against.
func InclHVGeneric(points ...[]float64) float64 {
	k := len(points)
	if k == 0 {
		return 0
	}
	n := len(points[0])
	var volume float64
	for mask := 1; mask < 1<<k; mask++ {
		term := 1.0
		for i := 0; i < n; i++ {
			m := 0.0
			first := true
			for j := 0; j < k; j++ {
				if mask&(1<<j) == 0 {
					continue
				}
				if first {
					m = points[j][i]
					first = false
				} else {
					m = worse(m, points[j][i])
				}
			}
			term *= m
		}
		if subsetSign(mask) > 0 {
			volume += term
		} else {
			volume -= term
		}
	}
	return volume
}

// subsetSign is +1 for subsets of odd size and -1 for even ones.
func subsetSign(mask int) int8 {
	if bits.OnesCount(uint(mask))%2 == 1 {
		return 1
	}
	return -1
}
