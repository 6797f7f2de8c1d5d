package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/thouis/polyagamma/internal/summary"
)

// StreamSamples consumes draws from the channel, writes each one as a CSV
// row and returns the collected batch once the channel closes. Writing
// overlaps with generation so a large batch never sits twice in memory
// before hitting disk.
func StreamSamples(path string, in <-chan float64) ([]float64, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create samples csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"draw", "value"}); err != nil {
		return nil, errors.Wrap(err, "write header")
	}

	var samples []float64
	for v := range in {
		_ = w.Write([]string{
			strconv.Itoa(len(samples) + 1),
			fmt.Sprintf("%.17g", v),
		})
		samples = append(samples, v)
	}
	w.Flush()
	return samples, errors.Wrap(w.Error(), "write samples csv")
}

func WriteSummary(path string, s summary.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create summary csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"draws", "mean", "variance", "min", "max"})
	w.Write([]string{
		strconv.Itoa(s.Draws),
		fmt.Sprintf("%.6f", s.Mean),
		fmt.Sprintf("%.6f", s.Variance),
		fmt.Sprintf("%.6f", s.Min),
		fmt.Sprintf("%.6f", s.Max),
	})
	w.Flush()
	return errors.Wrap(w.Error(), "write summary csv")
}
