package filter

import "math"

// sinc is sin(x)/x with the removable singularity at zero filled in.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

func box(x float64) float64 {
	if math.Abs(x) <= 0.5 {
		return 1
	}
	return 0
}

func triangle(x float64) float64 {
	x = math.Abs(x)
	if x < 1 {
		return 1 - x
	}
	return 0
}

// cubicBC evaluates the Mitchell-Netravali cubic with parameters b and c.
// Hermite is (0, 0), Catmull-Rom (0, 1/2), Mitchell (1/3, 1/3) and the
// cubic B-spline (1, 0).
func cubicBC(b, c, x float64) float64 {
	a := math.Abs(x)
	var k float64
	switch {
	case a < 1:
		k = (12-9*b-6*c)*a*a*a +
			(-18+12*b+6*c)*a*a +
			(6 - 2*b)
	case a < 2:
		k = (-b-6*c)*a*a*a +
			(6*b+30*c)*a*a +
			(-12*b-48*c)*a +
			(8*b + 24*c)
	}
	return k / 6
}

// windowedSinc is sinc(πx) weighted by the raised cosine alpha+(1-alpha)cos(πx)
// and cut off at |x| = 1.
func windowedSinc(alpha, x float64) float64 {
	x = math.Abs(x)
	if x > 1 {
		return 0
	}
	x *= math.Pi
	return sinc(x) * (alpha + (1-alpha)*math.Cos(x))
}

func hamming(x float64) float64 { return windowedSinc(0.54, x) }

func hann(x float64) float64 { return windowedSinc(0.5, x) }

func lanczos3(x float64) float64 {
	x = math.Abs(x)
	if x < 3 {
		return sinc(math.Pi*x) * sinc(math.Pi*x/3)
	}
	return 0
}

func gaussian(x float64) float64 {
	x = math.Abs(x)
	if x < 2 {
		return math.Exp(-2 * x * x)
	}
	return 0
}

// lagrange evaluates the Lagrange interpolation basis of order
// floor(2*support) at distance x. Factors whose node sits at distance zero
// contribute 1.
func lagrange(x, support float64) float64 {
	x = math.Abs(x)
	if x > support {
		return 0
	}
	order := int(2 * support)
	n := int(support + x)
	v := 1.0
	for i := 0; i < order; i++ {
		d := float64(n - i)
		if d != 0 {
			v *= (d - x) / d
		}
	}
	return v
}

// mks2013 is the 2013 Magic Kernel Sharp.
func mks2013(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < 0.5:
		return 0.625 + 1.75*(0.5-x)*(0.5+x)
	case x < 1.5:
		return (1 - x) * (1.75 - x)
	case x < 2.5:
		return -0.125 * (2.5 - x) * (2.5 - x)
	}
	return 0
}

// mks2021 is the 2021 Magic Kernel Sharp.
func mks2021(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < 0.5:
		return 577.0/576.0 - 239.0/144.0*x*x
	case x < 1.5:
		return (35.0 / 36.0) * (x - 1) * (x - 239.0/140.0)
	case x < 2.5:
		return (1.0 / 6.0) * (x - 2) * (65.0/24.0 - x)
	case x < 3.5:
		return (1.0 / 36.0) * (x - 3) * (x - 3.75)
	case x < 4.5:
		return -(1.0 / 288.0) * (x - 4.5) * (x - 4.5)
	}
	return 0
}
