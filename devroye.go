package polyagamma

import (
	"math"

	"github.com/thouis/polyagamma/specfunc"
)

const (
	// truncPoint is the fixed truncation point t = 2/pi separating the two
	// analytic forms of the Jacobi coefficient series. Do not retune; the
	// mixture constants below are derived from it.
	truncPoint = 0.6366197723675814

	piSquared      = 9.869604401089358  // pi^2
	piSquaredOver8 = 1.233700550136169  // pi^2 / 8
	logHalfPi      = 0.4515827052894548 // log(pi / 2)
)

// Tail masses of the two proposal branches of the z == 0 sampler, and the
// probability of picking the inverse-Gaussian-style branch.
const (
	jacobiP0    = 0.422599094
	jacobiQ0    = 0.57810262346829443
	jacobiRatio = jacobiP0 / (jacobiP0 + jacobiQ0)
)

// jacobiConfig caches the quantities derived from the tilting parameter that
// the rejection loop of a single J*(1, z) draw reuses. It lives on the stack
// for exactly one component draw.
type jacobiConfig struct {
	mu    float64 // 1/z
	k     float64 // pi^2/8 + z^2/2, decay rate of the exponential branch
	ratio float64 // probability of the inverse-Gaussian proposal branch
	x     float64 // current candidate
	logX  float64
}

// piecewiseCoef computes a_n(x|t), the nth coefficient of the alternating
// series S_n(x|t). The two analytic forms on either side of the truncation
// point come from the Jacobi-theta-function representation of the density.
func piecewiseCoef(n int, cfg *jacobiConfig) float64 {
	nPlusHalf := float64(n) + 0.5
	nPlusHalfPi := math.Pi * nPlusHalf

	switch {
	case cfg.x > truncPoint:
		return nPlusHalfPi * math.Exp(-0.5*cfg.x*nPlusHalfPi*nPlusHalfPi)
	case cfg.x > 0:
		return nPlusHalfPi * math.Exp(-1.5*(logHalfPi+cfg.logX)-2*nPlusHalf*nPlusHalf/cfg.x)
	}
	return 0
}

// jacobiZero draws one sample from J*(1, 0) using the algorithm of Devroye
// (2009), page 7. A candidate comes from a two-branch mixture around the
// truncation point; the alternating partial sums of piecewiseCoef then
// bracket a scaled uniform until the candidate is accepted or rejected.
func jacobiZero(src Source, cfg *jacobiConfig) float64 {
	for {
		if src.Uniform() < jacobiRatio {
			var e1, e2 float64
			for {
				e1 = src.Exponential()
				e2 = src.Exponential()
				if e1*e1 <= math.Pi*e2 { // 2/t = pi
					break
				}
			}
			cfg.x = 1 + truncPoint*e1
			cfg.x = truncPoint / (cfg.x * cfg.x)
		} else {
			cfg.x = truncPoint + 8*src.Exponential()/piSquared
		}
		cfg.logX = math.Log(cfg.x)
		s := piecewiseCoef(0, cfg)
		u := src.Uniform() * s
		for i := 1; ; i++ {
			if i&0x1 == 1 {
				s -= piecewiseCoef(i, cfg)
				if u < s {
					return cfg.x
				}
			} else {
				s += piecewiseCoef(i, cfg)
				if u > s {
					break
				}
			}
		}
	}
}

// jacobi draws one sample from J*(1, z) for z != 0 using the method of
// Polson et al. (2013). Candidates mix a right-truncated Inverse-Gaussian
// with a shifted exponential; the series acceptance test reuses the
// z-independent S_n(x|t) rather than S_n(x|z,t), which factors the
// z-dependence into the mixture weights and keeps the coefficients from
// blowing up for large z.
func jacobi(src Source, cfg *jacobiConfig) float64 {
	for {
		if src.Uniform() < cfg.ratio {
			cfg.x = RightBoundedInverseGaussian(src, cfg.mu, 1, truncPoint)
		} else {
			cfg.x = truncPoint + src.Exponential()/cfg.k
		}
		cfg.logX = math.Log(cfg.x)
		s := piecewiseCoef(0, cfg)
		u := src.Uniform() * s
		for i := 1; ; i++ {
			if i&0x1 == 1 {
				s -= piecewiseCoef(i, cfg)
				if u <= s {
					return cfg.x
				}
			} else {
				s += piecewiseCoef(i, cfg)
				if u > s {
					break
				}
			}
		}
	}
}

// Devroye draws one sample from PG(n, z) for a positive integer shape n,
// accumulating n independent J*(1, z) component draws and scaling by 0.25.
// The distribution is symmetric in z, so the sign of z is ignored.
//
// Each component draw terminates almost surely (the series coefficients
// decay at an exponential rate) but carries no hard iteration cap, so the
// cost per draw is unbounded in the worst case.
func Devroye(src Source, n uint64, z float64) float64 {
	var out float64

	if z == 0 {
		var cfg jacobiConfig
		for ; n > 0; n-- {
			out += jacobiZero(src, &cfg)
		}
		return 0.25 * out
	}

	z = math.Abs(z)
	cfg := jacobiConfig{
		mu: 1 / z,
		k:  piSquaredOver8 + 0.5*z*z,
	}
	// Mixture weight from matching the probability mass of the two proposal
	// tails on either side of the truncation point.
	q := 0.5 * math.Pi * math.Exp(-cfg.k*truncPoint) / cfg.k
	p := 2 * math.Exp(-z) * specfunc.InverseGaussianCDF(truncPoint, cfg.mu, 1)
	cfg.ratio = p / (p + q)

	for ; n > 0; n-- {
		out += jacobi(src, &cfg)
	}
	return 0.25 * out
}
