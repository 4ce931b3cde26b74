package filter

import "github.com/disintegration/imaging"

// Builtins supplies the standard kernels that a host resampling library
// usually ships already. Resolve delegates Linear, the Catmull-Rom,
// Mitchell and B-spline cubics, Lanczos3 and Gaussian to it.
type Builtins interface {
	Linear() Kernel
	CatmullRom() Kernel
	MitchellNetravali() Kernel
	BSpline() Kernel
	Lanczos3() Kernel
	Gaussian() Kernel
}

var (
	// Imaging takes the standard kernels from github.com/disintegration/imaging.
	Imaging Builtins = imagingBuiltins{}

	// Native implements the standard kernels in this package. They match
	// Imaging numerically.
	Native Builtins = nativeBuiltins{}
)

type imagingBuiltins struct{}

func (imagingBuiltins) Linear() Kernel            { return fromImaging(imaging.Linear) }
func (imagingBuiltins) CatmullRom() Kernel        { return fromImaging(imaging.CatmullRom) }
func (imagingBuiltins) MitchellNetravali() Kernel { return fromImaging(imaging.MitchellNetravali) }
func (imagingBuiltins) BSpline() Kernel           { return fromImaging(imaging.BSpline) }
func (imagingBuiltins) Lanczos3() Kernel          { return fromImaging(imaging.Lanczos) }
func (imagingBuiltins) Gaussian() Kernel          { return fromImaging(imaging.Gaussian) }

type nativeBuiltins struct{}

func (nativeBuiltins) Linear() Kernel            { return Kernel{Support: 1, Eval: triangle} }
func (nativeBuiltins) CatmullRom() Kernel        { return cubic(0, 0.5, 2) }
func (nativeBuiltins) MitchellNetravali() Kernel { return cubic(1.0/3.0, 1.0/3.0, 2) }
func (nativeBuiltins) BSpline() Kernel           { return cubic(1, 0, 2) }
func (nativeBuiltins) Lanczos3() Kernel          { return Kernel{Support: 3, Eval: lanczos3} }
func (nativeBuiltins) Gaussian() Kernel          { return Kernel{Support: 2, Eval: gaussian} }

func cubic(b, c, support float64) Kernel {
	return Kernel{
		Support: support,
		Eval: func(x float64) float64 {
			return cubicBC(b, c, x)
		},
	}
}
