package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dapka/internal/http/api"
	"dapka/internal/http/handlers"
	"dapka/internal/http/handlers/figures"
	"dapka/internal/http/handlers/records"
	statsh "dapka/internal/http/handlers/stats"
	"dapka/internal/http/router"
	"dapka/internal/models"
	"dapka/internal/report/plot"
	repo "dapka/internal/repository"
	"dapka/internal/service/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	ttm := func(v float64) *float64 { return &v }
	id := "PRR_kw1"
	rows := []models.Record{
		{PRNumber: 1, ReviewID: &id, AuthorLogin: "coderabbitai", Owner: "octo", Repo: "hello", Additions: 4, TimeToMerge: ttm(100)},
		{PRNumber: 2, AuthorLogin: models.NonAIReviewLogin, Owner: "octo", Repo: "hello", Additions: 9, TimeToMerge: ttm(300)},
	}

	log := handlers.NewLogger()
	recordsRepo := repo.NewRecordsRepo(rows, "coderabbitai")

	h := router.Handlers{
		Stats:   statsh.NewStatsHandler(log, stats.NewStatsService(log, recordsRepo)),
		Records: records.NewRecordsHandler(log, recordsRepo),
		Figures: figures.NewFiguresHandler(log, recordsRepo, plot.NewRenderer(log, plot.DefaultOptions())),
	}

	srv := httptest.NewServer(router.New(log, h))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRouter_Health(t *testing.T) {
	srv := newServer(t)

	resp := get(t, srv.URL+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_Statistics(t *testing.T) {
	srv := newServer(t)

	resp := get(t, srv.URL+"/statistics")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary models.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, "octo", summary.Owner)
	assert.Equal(t, 1, summary.AIPullRequests)
	assert.Equal(t, 1, summary.NonAIPullRequests)
	require.Len(t, summary.Groups, 2)
	assert.Equal(t, 100.0, summary.Groups[0].Mean)
	assert.Equal(t, 300.0, summary.Groups[1].Mean)
}

func TestRouter_Records(t *testing.T) {
	srv := newServer(t)

	resp := get(t, srv.URL+"/records?group=non_ai")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list api.RecordsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, 2, list.Records[0].PRNumber)

	resp = get(t, srv.URL+"/records/PRR_kw1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, srv.URL+"/records/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_Figures(t *testing.T) {
	srv := newServer(t)

	resp := get(t, srv.URL+"/histogram.png?func=sqrt&metric=additions")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	resp = get(t, srv.URL+"/scatterplot.png")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
