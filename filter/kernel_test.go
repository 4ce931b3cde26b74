package filter_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/adriansahlman/resample/filter"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"
)

func uniformImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestResampleFilter(t *testing.T) {
	nn := filter.Resolve(filter.Nearest).ResampleFilter()
	require.Zero(t, nn.Support)
	require.Nil(t, nn.Kernel)

	for _, kind := range filter.Kinds()[1:] {
		k := filter.Resolve(kind)
		f := k.ResampleFilter()
		require.Equal(t, k.Support, f.Support, "%v", kind)
		require.NotNil(t, f.Kernel, "%v", kind)
		for _, x := range []float64{0, 0.3, -0.7, 1.2, 2.6} {
			require.Equal(t, k.At(x), f.Kernel(x), "%v at %v", kind, x)
		}
	}
}

func TestInterpolator(t *testing.T) {
	require.Equal(t, draw.NearestNeighbor, filter.Resolve(filter.Nearest).Interpolator())

	k := filter.Resolve(filter.MKS2013)
	dk, ok := k.Interpolator().(*draw.Kernel)
	require.True(t, ok)
	require.Equal(t, 2.5, dk.Support)
	require.Equal(t, k.At(1.25), dk.At(1.25))
}

// Normalized weights leave a flat image flat whatever the kernel shape.
func TestScaleUniform(t *testing.T) {
	c := color.NRGBA{R: 90, G: 160, B: 30, A: 255}
	src := uniformImage(23, 17, c)
	for _, kind := range filter.Kinds() {
		k := filter.Resolve(kind)
		t.Run(kind.String(), func(t *testing.T) {
			for _, size := range []image.Point{{7, 5}, {40, 31}} {
				got := imaging.Resize(src, size.X, size.Y, k.ResampleFilter())
				requireUniform(t, got, c, 1)

				dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
				k.Interpolator().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
				requireUniform(t, dst, c, 1)
			}
		})
	}
}

func requireUniform(t *testing.T, img *image.NRGBA, want color.NRGBA, delta int) {
	t.Helper()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			got := img.NRGBAAt(x, y)
			require.InDelta(t, int(want.R), int(got.R), float64(delta), "(%d, %d)", x, y)
			require.InDelta(t, int(want.G), int(got.G), float64(delta), "(%d, %d)", x, y)
			require.InDelta(t, int(want.B), int(got.B), float64(delta), "(%d, %d)", x, y)
			require.InDelta(t, int(want.A), int(got.A), float64(delta), "(%d, %d)", x, y)
		}
	}
}
