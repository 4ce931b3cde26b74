package filter

import (
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Kernel is a resolved filter: an even weighting function of the distance
// in source samples, and the radius past which that function is zero.
//
// The zero Kernel is the point kernel used for nearest-neighbor sampling.
// It has no weighting function and resamplers must special-case it, see
// IsPoint.
type Kernel struct {
	Support float64
	Eval    func(x float64) float64
}

// IsPoint reports whether k samples the nearest source pixel instead of
// blending a neighborhood.
func (k Kernel) IsPoint() bool {
	return k.Eval == nil
}

// At returns the weight at distance x. The point kernel is 1 at zero and 0
// everywhere else.
func (k Kernel) At(x float64) float64 {
	if k.Eval == nil {
		if x == 0 {
			return 1
		}
		return 0
	}
	return k.Eval(x)
}

// ResampleFilter returns k in the form expected by the imaging package.
// A point kernel maps onto imaging's nearest-neighbor mode (zero support).
func (k Kernel) ResampleFilter() imaging.ResampleFilter {
	if k.IsPoint() {
		return imaging.NearestNeighbor
	}
	return imaging.ResampleFilter{Support: k.Support, Kernel: k.Eval}
}

// Interpolator returns k as an x/image/draw interpolator.
func (k Kernel) Interpolator() draw.Interpolator {
	if k.IsPoint() {
		return draw.NearestNeighbor
	}
	return &draw.Kernel{Support: k.Support, At: k.Eval}
}

func fromImaging(f imaging.ResampleFilter) Kernel {
	return Kernel{Support: f.Support, Eval: f.Kernel}
}
