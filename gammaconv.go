package polyagamma

// gammaConvTerms truncates the infinite weighted sum of Gamma variates that
// defines the Polya-Gamma distribution. 200 terms keep the approximation
// bias small and bounded; the truncation was validated empirically and
// should not be changed without re-deriving the error bounds.
const gammaConvTerms = 200

// GammaConv draws one approximate sample from PG(h, z) as a truncated
// convolution of independent standard-Gamma(h) variates. Unlike Devroye, the
// shape h may be any positive real and the cost is fixed: exactly
// gammaConvTerms engine draws, no rejection.
func GammaConv(src Source, h, z float64) float64 {
	z2 := z * z
	var out float64

	for n := gammaConvTerms - 1; n >= 0; n-- {
		c := float64(n) + 0.5
		out += src.Gamma(h) / (piSquared*c*c + z2)
	}
	return 0.5 * out
}
