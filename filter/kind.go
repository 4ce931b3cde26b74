// Package filter is a catalog of one-dimensional resampling kernels.
//
// A Kind names a kernel family. Resolve turns it into a Kernel, the
// (evaluator, support) pair a separable resampler convolves with. Kernels
// are pure functions and may be shared between goroutines.
package filter

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a resampling kernel.
type Kind uint8

const (
	Nearest Kind = iota
	Box
	Linear
	Hermite
	CatmullRom
	MitchellNetravali
	BSpline
	Hamming
	Hann
	Lanczos3
	Lagrange
	Gaussian
	MKS2013
	MKS2021

	numKinds
)

// Aliases matching the cubic family names used elsewhere.
const (
	CubicCatrom   = CatmullRom
	CubicMitchell = MitchellNetravali
	CubicBSpline  = BSpline
	Gauss         = Gaussian
)

var ErrUnknownKind = errors.New("unknown filter")

var kindNames = [numKinds]string{
	Nearest:           "nearest",
	Box:               "box",
	Linear:            "linear",
	Hermite:           "hermite",
	CatmullRom:        "catmullrom",
	MitchellNetravali: "mitchell",
	BSpline:           "bspline",
	Hamming:           "hamming",
	Hann:              "hann",
	Lanczos3:          "lanczos3",
	Lagrange:          "lagrange",
	Gaussian:          "gaussian",
	MKS2013:           "mks2013",
	MKS2021:           "mks2021",
}

var kindAliases = map[string]Kind{
	"point":              Nearest,
	"triangle":           Linear,
	"bilinear":           Linear,
	"tent":               Linear,
	"catrom":             CatmullRom,
	"catmull-rom":        CatmullRom,
	"bicubic":            CatmullRom,
	"mitchell-netravali": MitchellNetravali,
	"mitchellnetravali":  MitchellNetravali,
	"b-spline":           BSpline,
	"lanczos":            Lanczos3,
	"gauss":              Gaussian,
	"magic2013":          MKS2013,
	"magic2021":          MKS2021,
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k < numKinds
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind looks up a kind by its name or a common alias, ignoring case.
func ParseKind(name string) (Kind, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	if k, ok := kindAliases[s]; ok {
		return k, nil
	}
	return Nearest, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
