package stats

import (
	"errors"
	"fmt"
	"slices"

	"dapka/internal/models"

	"gonum.org/v1/gonum/stat"
)

var ErrUnknownMetric = errors.New("unknown metric column")

// IsMetric reports whether column holds numbers that can be summarized.
func IsMetric(column string) bool {
	return slices.Contains(models.NumericColumns, column)
}

// Describe computes count, moments and empirical quantiles of values.
func Describe(group string, values []float64) models.GroupSummary {
	s := models.GroupSummary{Group: group, Count: len(values)}
	if len(values) == 0 {
		return s
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s.Mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.P25 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	s.P75 = stat.Quantile(0.75, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)

	return s
}

// GroupLabels returns the labels of group A (the login) and group B (everything else).
func GroupLabels(login string) (string, string) {
	return login, "not " + login
}

// Split divides the metric values of records into rows authored by login and the rest.
// Rows with a null metric are skipped.
func Split(records []models.Record, login, metric string) ([]float64, []float64, error) {
	if !IsMetric(metric) {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	var a, b []float64
	for i := range records {
		v, ok := records[i].Metric(metric)
		if !ok {
			continue
		}
		if records[i].AuthorLogin == login {
			a = append(a, v)
		} else {
			b = append(b, v)
		}
	}
	return a, b, nil
}

// Summarize describes metric for both groups of records.
func Summarize(records []models.Record, login, metric string) ([]models.GroupSummary, error) {
	a, b, err := Split(records, login, metric)
	if err != nil {
		return nil, err
	}

	labelA, labelB := GroupLabels(login)
	return []models.GroupSummary{
		Describe(labelA, a),
		Describe(labelB, b),
	}, nil
}
