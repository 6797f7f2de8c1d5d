// Package specfunc provides the special-function approximations used by the
// Polya-Gamma samplers: the complementary error function, log-gamma, the
// normalized upper incomplete gamma function and the Inverse-Gaussian CDF.
//
// The rational Chebyshev approximations follow Cody (1969) and the
// coefficient tables of Cody & Hillstrom (1967) and Temme (1994). Accuracy is
// tuned for the argument ranges exercised by Polya-Gamma sampling, not for a
// general-purpose special-function library.
package specfunc

import "math"

const (
	epsilon = 0x1p-52   // DBL_EPSILON
	tiny    = 0x1p-1022 // DBL_MIN

	invSqrtPi = 0.5641895835477563 // 1 / sqrt(pi)
)

// Band cutoffs: below smallCutoff erfc saturates at 2, above bigCutoff the
// true value has underflowed to 0.
const (
	erfcBigCutoff   = 26.615717509251258
	erfcSmallCutoff = -6.003636680306125
)

// erfc coefficients for x in [epsilon, 0.5), a rational polynomial in x^2.
var erfcP1 = [5]float64{
	3.20937758913846947e+03,
	3.77485237685302021e+02,
	1.13864154151050156e+02,
	3.16112374387056560e+00,
	1.85777706184603153e-01,
}

var erfcQ1 = [4]float64{
	2.84423683343917062e+03,
	1.28261652607737228e+03,
	2.44024637934444173e+02,
	2.36012909523441209e+01,
}

// erfc coefficients for x in [0.5, 4).
var erfcP2 = [5]float64{
	7.3738883116,
	6.8650184849,
	3.0317993362,
	5.6316961891e-01,
	4.3187787405e-05,
}

var erfcQ2 = [4]float64{
	7.3739608908,
	1.5184908190e+01,
	1.2795529509e+01,
	5.3542167949,
}

// erfc coefficients for the asymptotic correction on [4, bigCutoff).
var erfcP3 = [3]float64{
	-4.25799643553e-02,
	-1.96068973726e-01,
	-5.16882262185e-02,
}

var erfcQ3 = [2]float64{
	1.50942070545e-01,
	9.21452411694e-01,
}

// Erfc computes the complementary error function using rational Chebyshev
// approximations over five domain bands. Maximum relative error against the
// standard library implementation is about 1.1e-9.
func Erfc(x float64) float64 {
	if x < erfcSmallCutoff {
		return 2
	}
	// The negative branch reflects off the positive one. This is the
	// flattened form of erfc(x) = 2 - erfc(-x).
	if x < -epsilon {
		return 2 - erfcPos(-x)
	}
	return erfcPos(x)
}

// erfcPos evaluates erfc for x > -epsilon.
func erfcPos(x float64) float64 {
	switch {
	case x < epsilon:
		return 1
	case x < 0.5:
		z := x * x
		num := (((erfcP1[4]*z+erfcP1[3])*z+erfcP1[2])*z+erfcP1[1])*z + erfcP1[0]
		den := (((z+erfcQ1[3])*z+erfcQ1[2])*z+erfcQ1[1])*z + erfcQ1[0]
		return 1 - x*num/den
	case x < 4:
		num := (((erfcP2[4]*x+erfcP2[3])*x+erfcP2[2])*x+erfcP2[1])*x + erfcP2[0]
		den := (((x+erfcQ2[3])*x+erfcQ2[2])*x+erfcQ2[1])*x + erfcQ2[0]
		return math.Exp(-x*x) * num / den
	case x < erfcBigCutoff:
		z := x * x
		y := math.Exp(-z)
		// The correction term is meaningless once the true value has
		// underflowed; bail out to 0 before it produces garbage.
		if x*tiny > y*invSqrtPi {
			return 0
		}
		z = 1 / z
		z *= ((erfcP3[2]*z+erfcP3[1])*z + erfcP3[0]) / ((z+erfcQ3[1])*z + erfcQ3[0])
		return y * (invSqrtPi + z) / x
	default:
		return 0
	}
}
