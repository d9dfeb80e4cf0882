package stats_test

import (
	"math"
	"testing"

	"dapka/internal/models"
	"dapka/internal/service/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	s := stats.Describe("g", []float64{5, 3, 1, 4, 2})

	assert.Equal(t, "g", s.Group)
	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 3.0, s.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(2.5), s.StdDev, 1e-9)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.Equal(t, 3.0, s.Median)
	assert.Equal(t, 2.0, s.P25)
	assert.Equal(t, 4.0, s.P75)
	assert.Equal(t, 5.0, s.P90)
}

func TestDescribe_SingleAndEmpty(t *testing.T) {
	one := stats.Describe("one", []float64{7})
	assert.Equal(t, 1, one.Count)
	assert.Equal(t, 7.0, one.Mean)
	assert.Equal(t, 0.0, one.StdDev)
	assert.Equal(t, 7.0, one.Median)

	empty := stats.Describe("none", nil)
	assert.Equal(t, models.GroupSummary{Group: "none"}, empty)
}

func TestSummarize(t *testing.T) {
	ttm := func(v float64) *float64 { return &v }
	records := []models.Record{
		{PRNumber: 1, AuthorLogin: "coderabbitai", TimeToMerge: ttm(100), Additions: 1},
		{PRNumber: 1, AuthorLogin: "coderabbitai", TimeToMerge: ttm(100), Additions: 1},
		{PRNumber: 2, AuthorLogin: models.NonAIReviewLogin, TimeToMerge: ttm(300), Additions: 9},
		{PRNumber: 3, AuthorLogin: models.NonAIReviewLogin, Additions: 4},
	}

	groups, err := stats.Summarize(records, "coderabbitai", models.ColTimeToMerge)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "coderabbitai", groups[0].Group)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "not coderabbitai", groups[1].Group)
	assert.Equal(t, 1, groups[1].Count)
	assert.Equal(t, 300.0, groups[1].Mean)

	groups, err = stats.Summarize(records, "coderabbitai", models.ColAdditions)
	require.NoError(t, err)
	assert.Equal(t, 2, groups[1].Count)

	_, err = stats.Summarize(records, "coderabbitai", models.ColBody)
	assert.ErrorIs(t, err, stats.ErrUnknownMetric)
}
