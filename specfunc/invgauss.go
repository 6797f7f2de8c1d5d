package specfunc

import "math"

// InverseGaussianCDF computes the cumulative distribution function of an
// Inverse-Gaussian(mu, lambda) distribution at x > 0.
//
// The second term multiplies by c = exp(lambda/mu) on both sides of the Erfc
// factor rather than folding exp(2*lambda/mu) into a single coefficient; the
// arrangement is kept verbatim from the reference numerics. It overflows once
// lambda/mu exceeds roughly 709, outside the range the samplers exercise.
func InverseGaussianCDF(x, mu, lambda float64) float64 {
	a := math.Sqrt(0.5 * lambda / x)
	b := a * (x / mu)
	c := math.Exp(lambda / mu)

	return 0.5 * (Erfc(a-b) + c*Erfc(b+a)*c)
}
