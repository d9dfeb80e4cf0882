package plot

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const barWidth = 40

// Bin is one bucket of a density histogram.
type Bin struct {
	Low     float64
	High    float64
	Density float64
}

// Bins splits values into n equal-width buckets whose densities integrate to 1.
func Bins(values []float64, n int) []Bin {
	if len(values) == 0 || n <= 0 {
		return nil
	}

	lo, hi := floats.Min(values), floats.Max(values)
	width := (hi - lo) / float64(n)
	if width == 0 {
		width = 1
	}

	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Low = lo + float64(i)*width
		bins[i].High = bins[i].Low + width
	}

	for _, v := range values {
		i := int((v - lo) / width)
		if i >= n {
			i = n - 1
		}
		bins[i].Density++
	}

	total := float64(len(values)) * width
	for i := range bins {
		bins[i].Density /= total
	}
	return bins
}

// WriteText prints both groups of c as horizontal bars.
func (r *Renderer) WriteText(w io.Writer, c Comparison) error {
	sections := []struct {
		title  string
		values []float64
	}{
		{"Histogram of " + c.LabelA, c.A},
		{"Histogram of " + c.LabelB + " values", c.B},
	}

	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s (%s of %s, n=%d)\n", s.title, c.Transform, c.Metric, len(s.values)); err != nil {
			return err
		}
		if err := writeBars(w, Bins(s.values, r.opts.Bins)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func writeBars(w io.Writer, bins []Bin) error {
	if len(bins) == 0 {
		_, err := fmt.Fprintln(w, "  (no data)")
		return err
	}

	peak := 0.0
	for _, b := range bins {
		peak = max(peak, b.Density)
	}

	for _, b := range bins {
		n := 0
		if peak > 0 {
			n = int(b.Density / peak * barWidth)
		}
		_, err := fmt.Fprintf(w, "  [%12.4f, %12.4f) %-*s %.4f\n", b.Low, b.High, barWidth, strings.Repeat("#", n), b.Density)
		if err != nil {
			return err
		}
	}
	return nil
}
