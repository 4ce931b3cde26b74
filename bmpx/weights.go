package bmpx

import (
	"math"

	"github.com/adriansahlman/resample/filter"
)

// Code below adapted from
// https://github.com/disintegration/imaging/blob/24d954dc01266ac1e8ba74cbe5e632c87fb0b38a/resize.go

type indexWeight struct {
	index  int
	weight float64
}

// computeWeights returns the normalized kernel weights for a single
// dimension, one set per output index, and the number of input rows the
// widest set spans.
func computeWeights(dstSize, srcSize int, k filter.Kernel) ([][]indexWeight, int) {
	if k.IsPoint() {
		return nearestWeights(dstSize, srcSize), 1
	}
	du := float64(srcSize) / float64(dstSize)
	scale := du
	if scale < 1.0 {
		scale = 1.0
	}
	ru := math.Ceil(scale * k.Support)

	out := make([][]indexWeight, dstSize)
	tmp := make([]indexWeight, 0, dstSize*int(ru+2)*2)

	var span int
	for v := 0; v < dstSize; v++ {
		fu := (float64(v)+0.5)*du - 0.5

		begin := int(math.Ceil(fu - ru))
		if begin < 0 {
			begin = 0
		}
		end := int(math.Floor(fu + ru))
		if end > srcSize-1 {
			end = srcSize - 1
		}

		var sum float64
		for u := begin; u <= end; u++ {
			if w := k.Eval((float64(u) - fu) / scale); w != 0 {
				sum += w
				tmp = append(tmp, indexWeight{index: u, weight: w})
			}
		}
		if sum != 0 {
			for i := range tmp {
				tmp[i].weight /= sum
			}
		}
		// Zero weights are dropped, so measure the index range rather than
		// the count; a kernel with interior zeros still needs every row in
		// between buffered.
		if n := len(tmp); n > 0 {
			span = max(span, tmp[n-1].index-tmp[0].index+1)
		}
		out[v] = tmp
		tmp = tmp[len(tmp):]
	}
	return out, max(span, 1)
}

// nearestWeights maps every output index onto the single source index
// whose cell contains the output sample center.
func nearestWeights(dstSize, srcSize int) [][]indexWeight {
	du := float64(srcSize) / float64(dstSize)
	out := make([][]indexWeight, dstSize)
	flat := make([]indexWeight, dstSize)
	for v := range out {
		u := int((float64(v) + 0.5) * du)
		if u > srcSize-1 {
			u = srcSize - 1
		}
		flat[v] = indexWeight{index: u, weight: 1}
		out[v] = flat[v : v+1 : v+1]
	}
	return out
}
