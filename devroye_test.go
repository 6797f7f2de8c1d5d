package polyagamma

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/thouis/polyagamma/engine"
)

// pgMean is the closed-form mean of PG(n, z): n/4 at z = 0, otherwise
// n*tanh(z/2)/(2z).
func pgMean(n, z float64) float64 {
	if z == 0 {
		return n / 4
	}
	return n / (2 * z) * math.Tanh(z/2)
}

func TestDevroyeMeanZeroTilt(t *testing.T) {
	eng := engine.New(42)
	const iter = 100_000
	var sum float64
	for i := 0; i < iter; i++ {
		sum += Devroye(eng, 1, 0)
	}
	mean := sum / iter
	if math.Abs(mean-0.25) > 0.01 {
		t.Fatalf("PG(1,0) mean %.4f, want 0.25 +- 0.01", mean)
	}
}

func TestDevroyeMeanLargerShape(t *testing.T) {
	eng := engine.New(42)
	const iter = 20_000
	var sum float64
	for i := 0; i < iter; i++ {
		sum += Devroye(eng, 4, 0)
	}
	mean := sum / iter
	if math.Abs(mean-1.0) > 0.02 {
		t.Fatalf("PG(4,0) mean %.4f, want 1.0 +- 0.02", mean)
	}
}

func TestDevroyeTiltedMean(t *testing.T) {
	const iter = 50_000
	for _, z := range []float64{0.5, 1.5, -1.5, 4} {
		eng := engine.New(42)
		var sum float64
		for i := 0; i < iter; i++ {
			sum += Devroye(eng, 2, z)
		}
		mean := sum / iter
		want := pgMean(2, math.Abs(z))
		if math.Abs(mean-want) > 0.01 {
			t.Fatalf("PG(2,%v) mean %.4f, want %.4f +- 0.01", z, mean, want)
		}
	}
}

func TestDevroyeDeterminism(t *testing.T) {
	a := engine.New(123)
	b := engine.New(123)
	for i := 0; i < 200; i++ {
		x := Devroye(a, 3, 1.2)
		y := Devroye(b, 3, 1.2)
		if x != y {
			t.Fatalf("draw %d diverged: %v != %v", i, x, y)
		}
	}
}

func TestCrossMethodConsistency(t *testing.T) {
	// Devroye is exact and the gamma convolution is asymptotically exact, so
	// their empirical moments must agree at Monte Carlo resolution.
	const iter = 30_000
	n, z := 2.0, 1.0

	eng := engine.New(42)
	dev := make([]float64, iter)
	for i := range dev {
		dev[i] = Devroye(eng, uint64(n), z)
	}
	conv := make([]float64, iter)
	for i := range conv {
		conv[i] = GammaConv(eng, n, z)
	}

	meanDev, meanConv := stat.Mean(dev, nil), stat.Mean(conv, nil)
	if math.Abs(meanDev-meanConv) > 0.02 {
		t.Fatalf("means diverge: devroye %.4f vs gammaconv %.4f", meanDev, meanConv)
	}
	varDev, varConv := stat.Variance(dev, nil), stat.Variance(conv, nil)
	if math.Abs(varDev-varConv) > 0.02 {
		t.Fatalf("variances diverge: devroye %.4f vs gammaconv %.4f", varDev, varConv)
	}
}
