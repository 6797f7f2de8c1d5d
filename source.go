// Package polyagamma draws random variates from the Polya-Gamma distribution
// family PG(n, z) using two independent methods: Devroye's exact
// alternating-series sampler and a truncated gamma-convolution approximation.
// It also exposes the truncated-distribution samplers both methods are built
// on.
//
// Every sampler consumes primitive variates from a caller-supplied Source and
// requires exclusive sequential access to it for the duration of one call; a
// rejection step may consume a data-dependent number of primitive draws.
// Concurrent callers must use independent Source instances.
package polyagamma

// Source supplies the primitive random variates consumed by the samplers.
// Each call mutates the underlying generator state. Implementations need not
// be safe for concurrent use; the samplers never share one Source across
// goroutines.
type Source interface {
	// Uniform returns a variate uniformly distributed on [0, 1).
	Uniform() float64
	// Exponential returns a rate-1 exponential variate.
	Exponential() float64
	// Gamma returns a Gamma(shape, rate=1) variate.
	Gamma(shape float64) float64
	// Wald returns an unbounded Inverse-Gaussian(mu, lambda) variate.
	Wald(mu, lambda float64) float64
}
