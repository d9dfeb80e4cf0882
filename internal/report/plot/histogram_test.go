package plot_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dapka/internal/lib/sl"
	"dapka/internal/models"
	"dapka/internal/report/plot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const login = "coderabbitai"

func sampleRecords() []models.Record {
	ttm := func(v float64) *float64 { return &v }
	return []models.Record{
		{PRNumber: 1, AuthorLogin: login, Additions: 10, Deletions: 2, TimeToMerge: ttm(3600)},
		{PRNumber: 2, AuthorLogin: login, Additions: 40, Deletions: 0, TimeToMerge: ttm(7200)},
		{PRNumber: 3, AuthorLogin: login, Additions: 3, Deletions: 3, TimeToMerge: ttm(600)},
		{PRNumber: 4, AuthorLogin: models.NonAIReviewLogin, Additions: 100, Deletions: 50, TimeToMerge: ttm(86400)},
		{PRNumber: 5, AuthorLogin: models.NonAIReviewLogin, Additions: 1, Deletions: 1, TimeToMerge: ttm(120)},
		{PRNumber: 6, AuthorLogin: models.NonAIReviewLogin, Additions: 7, Deletions: 0},
	}
}

func TestCompare(t *testing.T) {
	ts, err := plot.ParseTransforms(nil)
	require.NoError(t, err)

	c := plot.Compare(sampleRecords(), models.ColAuthorLogin, login, models.ColTimeToMerge, ts[0])
	assert.Equal(t, []float64{3600, 7200, 600}, c.A)
	assert.Equal(t, []float64{86400, 120}, c.B)
	assert.Equal(t, "not "+login, c.LabelB)
	assert.Equal(t, "histogram_identity_by_author_login_metric_time_to_merge_in_seconds.png", c.FileName())
}

func TestBins(t *testing.T) {
	bins := plot.Bins([]float64{0, 1, 2, 3}, 2)
	require.Len(t, bins, 2)
	assert.InDelta(t, 0.0, bins[0].Low, 1e-9)
	assert.InDelta(t, 3.0, bins[1].High, 1e-9)

	total := 0.0
	for _, b := range bins {
		total += b.Density * (b.High - b.Low)
	}
	assert.InDelta(t, 1.0, total, 1e-9)

	assert.Nil(t, plot.Bins(nil, 30))
	assert.Len(t, plot.Bins([]float64{5, 5, 5}, 3), 3)
}

func TestRenderer_HistogramsText(t *testing.T) {
	r := plot.NewRenderer(sl.NewDiscardLogger(), plot.Options{Bins: 5, OutDir: t.TempDir()})
	ts, err := plot.ParseTransforms([]string{"log"})
	require.NoError(t, err)

	var buf bytes.Buffer
	paths, err := r.Histograms(sampleRecords(), models.ColAuthorLogin, login, models.ColTimeToMerge, ts, false, &buf)
	require.NoError(t, err)
	assert.Empty(t, paths)

	out := buf.String()
	assert.Contains(t, out, "Histogram of "+login+" (log of time_to_merge_in_seconds, n=3)")
	assert.Contains(t, out, "Histogram of not "+login+" values (identity of time_to_merge_in_seconds, n=2)")
	assert.Contains(t, out, "#")
}

func TestRenderer_HistogramsSavefig(t *testing.T) {
	dir := t.TempDir()
	r := plot.NewRenderer(sl.NewDiscardLogger(), plot.Options{Bins: 10, OutDir: dir})
	ts, err := plot.ParseTransforms([]string{"log1p"})
	require.NoError(t, err)

	paths, err := r.Histograms(sampleRecords(), models.ColAuthorLogin, login, models.ColAdditions, ts, true, nil)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "histogram_log1p_by_author_login_metric_additions.png"),
		filepath.Join(dir, "histogram_identity_by_author_login_metric_additions.png"),
	}, paths)

	for _, p := range paths {
		f, err := os.Open(p)
		require.NoError(t, err)
		_, err = png.Decode(f)
		f.Close()
		assert.NoError(t, err)
	}
}

func TestRenderer_EmptyGroup(t *testing.T) {
	r := plot.NewRenderer(sl.NewDiscardLogger(), plot.DefaultOptions())
	ts, err := plot.ParseTransforms(nil)
	require.NoError(t, err)

	c := plot.Compare(sampleRecords(), models.ColAuthorLogin, "nobody", models.ColAdditions, ts[0])
	assert.Empty(t, c.A)

	var img bytes.Buffer
	require.NoError(t, r.WritePNG(&img, c))
	_, err = png.Decode(&img)
	assert.NoError(t, err)

	var txt bytes.Buffer
	require.NoError(t, r.WriteText(&txt, c))
	assert.True(t, strings.Contains(txt.String(), "(no data)"))
}
