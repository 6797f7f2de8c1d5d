package specfunc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// referenceInverseGaussianCDF evaluates the textbook closed form
// Phi(a-b) + exp(2*lambda/mu)*Phi(-(a+b)) with the standard library erfc.
func referenceInverseGaussianCDF(x, mu, lambda float64) float64 {
	a := math.Sqrt(0.5 * lambda / x)
	b := a * (x / mu)
	return 0.5 * (math.Erfc(a-b) + math.Exp(2*lambda/mu)*math.Erfc(a+b))
}

func TestInverseGaussianCDFAgainstClosedForm(t *testing.T) {
	for _, mu := range []float64{0.3, 1, 2.5} {
		for _, lambda := range []float64{0.5, 1, 4} {
			for _, x := range []float64{0.05, 0.3, 0.6366, 1, 3, 10} {
				ref := referenceInverseGaussianCDF(x, mu, lambda)
				got := InverseGaussianCDF(x, mu, lambda)
				assert.InDelta(t, ref, got, 1e-8*math.Max(1, ref),
					"x=%v mu=%v lambda=%v", x, mu, lambda)
			}
		}
	}
}

func TestInverseGaussianCDFBoundsAndMonotone(t *testing.T) {
	mu, lambda := 1.0, 1.0
	prev := 0.0
	for x := 0.01; x < 20; x += 0.01 {
		cur := InverseGaussianCDF(x, mu, lambda)
		assert.GreaterOrEqual(t, cur, 0.0, "x=%v", x)
		assert.LessOrEqual(t, cur, 1+1e-9, "x=%v", x)
		if cur < prev-1e-9 {
			t.Fatalf("CDF decreased at x=%v: %v -> %v", x, prev, cur)
		}
		prev = cur
	}
	assert.InDelta(t, 1.0, InverseGaussianCDF(50, mu, lambda), 1e-6)
}
