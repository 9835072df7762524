// Package builder provides the elevation and length generators used by the
// graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// ElevationFn produces a node elevation from its position and an optional
// RNG. It must be deterministic for a given RNG state and must return a
// finite value.
type ElevationFn func(rng *rand.Rand, p Point) float64

// LengthFn produces the length of a segment between two positions. It must
// be deterministic for a given RNG state and return a finite value ≥ 0.
type LengthFn func(rng *rand.Rand, a, b Point) float64

// ConstantElevationFn returns an ElevationFn that always yields v.
// Panics if v is NaN or infinite.
func ConstantElevationFn(v float64) ElevationFn {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("ConstantElevationFn: value must be finite, got %g", v))
	}

	return func(*rand.Rand, Point) float64 { return v }
}

// UniformElevationFn returns an ElevationFn drawing integers uniformly from
// [ceil(lo), floor(hi)]. With a nil rng it yields the lower bound.
// Panics if hi < lo or either bound is not finite.
func UniformElevationFn(lo, hi float64) ElevationFn {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || hi < lo {
		panic(fmt.Sprintf("UniformElevationFn: require finite lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}
	lo, hi = math.Ceil(lo), math.Floor(hi)
	if hi < lo {
		panic(fmt.Sprintf("UniformElevationFn: no integer in [%g, %g]", lo, hi))
	}

	return func(rng *rand.Rand, _ Point) float64 {
		if rng == nil || hi == lo {
			return lo
		}
		return lo + float64(rng.Int63n(int64(hi-lo)+1))
	}
}

// RidgeElevationFn returns a smooth deterministic height field:
//
//	base + amplitude * (sin(x/wavelength) + cos(y/wavelength) + 2) / 4
//
// so every elevation lies in [base, base+amplitude]. Panics unless
// amplitude ≥ 0 and wavelength > 0.
func RidgeElevationFn(base, amplitude, wavelength float64) ElevationFn {
	if amplitude < 0 || !(wavelength > 0) {
		panic(fmt.Sprintf("RidgeElevationFn: require amplitude ≥ 0 and wavelength > 0, got %g, %g",
			amplitude, wavelength))
	}

	return func(_ *rand.Rand, p Point) float64 {
		return base + amplitude*(math.Sin(p.X/wavelength)+math.Cos(p.Y/wavelength)+2)/4
	}
}

// EuclideanLengthFn is the straight-line distance between a and b.
func EuclideanLengthFn(_ *rand.Rand, a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// TruncatedLengthFn is the straight-line distance rounded toward zero, the
// integer lengths of the original cached test maps. Short segments may get
// length 0.
func TruncatedLengthFn(_ *rand.Rand, a, b Point) float64 {
	return math.Trunc(math.Hypot(b.X-a.X, b.Y-a.Y))
}

// ConstantLengthFn returns a LengthFn that always yields l.
// Panics if l is negative, NaN or infinite.
func ConstantLengthFn(l float64) LengthFn {
	if !(l >= 0) || math.IsInf(l, 1) {
		panic(fmt.Sprintf("ConstantLengthFn: value must be finite and ≥ 0, got %g", l))
	}

	return func(*rand.Rand, Point, Point) float64 { return l }
}
