package bmpx

import (
	"testing"

	"github.com/adriansahlman/resample/filter"
	"github.com/stretchr/testify/require"
)

func TestComputeWeightsNormalized(t *testing.T) {
	for _, kind := range filter.Kinds()[1:] {
		k := filter.Resolve(kind)
		for _, sizes := range [][2]int{{10, 30}, {30, 10}, {7, 7 * 3}, {64, 17}} {
			ws, span := computeWeights(sizes[0], sizes[1], k)
			require.Len(t, ws, sizes[0])
			require.GreaterOrEqual(t, span, 1)
			for v, w := range ws {
				require.NotEmpty(t, w, "%v %v v=%d", kind, sizes, v)
				var sum float64
				for i, iw := range w {
					sum += iw.weight
					require.GreaterOrEqual(t, iw.index, 0)
					require.Less(t, iw.index, sizes[1])
					if i > 0 {
						require.Greater(t, iw.index, w[i-1].index)
					}
				}
				require.InDelta(t, 1, sum, 1e-9, "%v %v v=%d", kind, sizes, v)
				require.LessOrEqual(t, w[len(w)-1].index-w[0].index+1, span)
			}
		}
	}
}

// Downscaling by three lands taps exactly on the zeros of MKS2013 at
// distance one, which are dropped from the weight sets.
func TestComputeWeightsSpanCoversInteriorZeros(t *testing.T) {
	ws, span := computeWeights(10, 30, filter.Resolve(filter.MKS2013))
	var maxCount int
	for _, w := range ws {
		maxCount = max(maxCount, len(w))
	}
	require.Greater(t, span, maxCount)
	require.Equal(t, 15, span)
}

func TestNearestWeights(t *testing.T) {
	ws, span := computeWeights(3, 9, filter.Resolve(filter.Nearest))
	require.Equal(t, 1, span)
	require.Equal(t, [][]indexWeight{
		{{index: 1, weight: 1}},
		{{index: 4, weight: 1}},
		{{index: 7, weight: 1}},
	}, ws)

	ws, _ = computeWeights(5, 2, filter.Resolve(filter.Nearest))
	var got []int
	for _, w := range ws {
		got = append(got, w[0].index)
	}
	require.Equal(t, []int{0, 0, 1, 1, 1}, got)
}

func TestParallelizer(t *testing.T) {
	for _, p := range []parallelizer{{chunk: 1, limit: 0}, {chunk: 3, limit: 4}, {chunk: 100, limit: 8}} {
		seen := make([]int, 50)
		p.run(0, len(seen), func(chunks <-chan chunk) {
			for c := range chunks {
				for i := c.start; i < c.stop; i++ {
					seen[i]++
				}
			}
		})
		for i, n := range seen {
			require.Equal(t, 1, n, "index %d with %+v", i, p)
		}
	}
	p := parallelizer{chunk: 4, limit: 2}
	p.run(5, 5, func(<-chan chunk) { t.Fatal("empty range must not run") })
}

func TestPaddingBytes(t *testing.T) {
	require.Equal(t, 0, paddingBytes(4, 3))
	require.Equal(t, 1, paddingBytes(1, 3))
	require.Equal(t, 2, paddingBytes(2, 3))
	require.Equal(t, 1, paddingBytes(5, 3))
	require.Equal(t, 0, paddingBytes(7, 4))

	for _, bpp := range []int{3, 4} {
		for w := 1; w <= 64; w++ {
			pad := paddingBytes(w, bpp)
			require.Less(t, pad, 4, "width %d bpp %d", w, bpp)
			require.Zero(t, (bpp*w+pad)%4, "width %d bpp %d", w, bpp)
		}
	}
}
