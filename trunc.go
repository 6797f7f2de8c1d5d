package polyagamma

import "math"

// LeftBoundedGamma draws one sample from Gamma(shape=a, rate=b) conditioned
// on the value being greater than t. The returned value is always strictly
// above t.
//
// For a > 1 it uses Dagpunar's (1978) rejection algorithm, for a == 1 a
// shifted exponential needs no rejection at all, and for a < 1 it uses
// algorithm [A4] of Philippe (1997).
func LeftBoundedGamma(src Source, a, b, t float64) float64 {
	switch {
	case a > 1:
		b = t * b
		aMinus1 := a - 1
		bMinusA := b - a
		c0 := 0.5 * (bMinusA + math.Sqrt(bMinusA*bMinusA+4*b)) / b
		oneMinusC0 := 1 - c0
		logM := aMinus1*math.Log(aMinus1/oneMinusC0) - aMinus1
		for {
			x := b + src.Exponential()/c0
			logRho := aMinus1*math.Log(x) - x*oneMinusC0
			if math.Log(1-src.Uniform()) <= logRho-logM {
				return t * (x / b)
			}
		}
	case a == 1:
		return t + src.Exponential()/b
	default:
		tb := t * b
		for {
			x := 1 + src.Exponential()/tb
			if math.Log(1-src.Uniform()) <= (a-1)*math.Log(x) {
				return t * x
			}
		}
	}
}

// RightBoundedInverseGaussian draws one sample from an
// Inverse-Gaussian(mu, lambda) conditioned on the value being less than t.
// The returned value is always strictly below t.
//
// When t < mu the unconditional density has nearly all of its mass above the
// bound, so rejecting unbounded draws would stall; instead a
// Scaled-Inverse-Chi-Square proposal is built by sampling the tail of a
// standard normal with a pair of exponentials (Devroye 1986, p. 382) and the
// proposal is accepted with probability exp(-0.5*lambda*x/mu^2), per
// Appendix S1 of Polson et al. (2013). When t >= mu, unbounded Wald draws
// are simply rejected until one falls below t.
func RightBoundedInverseGaussian(src Source, mu, lambda, t float64) float64 {
	if t < mu {
		a := 1 / (mu * mu)
		halfLambda := -0.5 * lambda
		for {
			var e1, e2 float64
			for {
				e1 = src.Exponential()
				e2 = src.Exponential()
				if e1*e1 <= 2*e2/t {
					break
				}
			}
			x := 1 + t*e1
			x = t / (x * x)
			if math.Log(1-src.Uniform()) < halfLambda*a*x {
				return x
			}
		}
	}
	for {
		x := src.Wald(mu, lambda)
		if x < t {
			return x
		}
	}
}
