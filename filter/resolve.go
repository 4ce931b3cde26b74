package filter

import "fmt"

const lagrangeSupport = 2.0

type entry func(b Builtins) Kernel

var catalog = [numKinds]entry{
	Nearest: func(Builtins) Kernel { return Kernel{} },
	Box:     func(Builtins) Kernel { return Kernel{Support: 0.5, Eval: box} },
	Linear:  Builtins.Linear,
	Hermite: func(Builtins) Kernel { return cubic(0, 0, 1) },

	CatmullRom:        Builtins.CatmullRom,
	MitchellNetravali: Builtins.MitchellNetravali,
	BSpline:           Builtins.BSpline,

	Hamming:  func(Builtins) Kernel { return Kernel{Support: 1, Eval: hamming} },
	Hann:     func(Builtins) Kernel { return Kernel{Support: 1, Eval: hann} },
	Lanczos3: Builtins.Lanczos3,
	Lagrange: func(Builtins) Kernel {
		return Kernel{
			Support: lagrangeSupport,
			Eval: func(x float64) float64 {
				return lagrange(x, lagrangeSupport)
			},
		}
	},
	Gaussian: Builtins.Gaussian,
	MKS2013:  func(Builtins) Kernel { return Kernel{Support: 2.5, Eval: mks2013} },
	MKS2021:  func(Builtins) Kernel { return Kernel{Support: 4.5, Eval: mks2021} },
}

func init() {
	for k, e := range catalog {
		if e == nil {
			panic(fmt.Sprintf("filter: no catalog entry for %v", Kind(k)))
		}
	}
}

// Resolve returns the kernel for kind, taking the standard kernels from
// the imaging package. It panics if kind is not a declared Kind.
func Resolve(kind Kind) Kernel {
	return ResolveWith(kind, Imaging)
}

// ResolveWith is like Resolve but takes the standard kernels from b.
func ResolveWith(kind Kind, b Builtins) Kernel {
	if !kind.Valid() {
		panic(fmt.Sprintf("filter: resolve of undeclared %v", kind))
	}
	return catalog[kind](b)
}
