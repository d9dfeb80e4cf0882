package stats_test

import (
	"context"
	"errors"
	"testing"

	"dapka/internal/lib/sl"
	"dapka/internal/models"
	repo "dapka/internal/repository"
	"dapka/internal/service/mocks"
	"dapka/internal/service/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetStatistics_Success(t *testing.T) {
	ctx := context.Background()
	provider := mocks.NewRecordsProvider(t)

	ttm := func(v float64) *float64 { return &v }
	records := []models.Record{
		{PRNumber: 1, AuthorLogin: "copilot-pull-request-reviewer", Owner: "acme", Repo: "widgets", TimeToMerge: ttm(10)},
		{PRNumber: 1, AuthorLogin: "copilot-pull-request-reviewer", Owner: "acme", Repo: "widgets", TimeToMerge: ttm(10)},
		{PRNumber: 3, AuthorLogin: "copilot-pull-request-reviewer", Owner: "acme", Repo: "widgets", TimeToMerge: ttm(30)},
		{PRNumber: 2, AuthorLogin: models.NonAIReviewLogin, Owner: "acme", Repo: "widgets", TimeToMerge: ttm(50)},
	}

	provider.On("GetRecords", ctx, repo.GroupAll).Return(records, nil).Once()
	provider.On("Login").Return("copilot-pull-request-reviewer").Once()

	svc := stats.NewStatsService(sl.NewDiscardLogger(), provider)
	summary, err := svc.GetStatistics(ctx, models.ColTimeToMerge)

	require.NoError(t, err)
	assert.Equal(t, "acme", summary.Owner)
	assert.Equal(t, "widgets", summary.Repo)
	assert.Equal(t, 2, summary.AIPullRequests)
	assert.Equal(t, 3, summary.AIReviews)
	assert.Equal(t, 1, summary.NonAIPullRequests)
	require.Len(t, summary.Groups, 2)
	assert.Equal(t, 3, summary.Groups[0].Count)
	assert.Equal(t, 50.0, summary.Groups[1].Mean)
}

func TestStatsService_GetStatistics_UnknownMetric(t *testing.T) {
	ctx := context.Background()
	provider := mocks.NewRecordsProvider(t)

	provider.On("GetRecords", ctx, repo.GroupAll).Return([]models.Record{}, nil).Once()
	provider.On("Login").Return("copilot-pull-request-reviewer").Once()

	svc := stats.NewStatsService(sl.NewDiscardLogger(), provider)
	summary, err := svc.GetStatistics(ctx, "body")

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, stats.ErrUnknownMetric)
}

func TestStatsService_GetStatistics_ProviderError(t *testing.T) {
	ctx := context.Background()
	provider := mocks.NewRecordsProvider(t)
	providerErr := errors.New("records unavailable")

	provider.On("GetRecords", ctx, repo.GroupAll).Return(nil, providerErr).Once()

	svc := stats.NewStatsService(sl.NewDiscardLogger(), provider)
	summary, err := svc.GetStatistics(ctx, models.ColTimeToMerge)

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, providerErr)
}
