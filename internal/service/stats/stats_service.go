package stats

import (
	"context"
	"log/slog"

	"dapka/internal/lib"
	"dapka/internal/models"
	repo "dapka/internal/repository"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RecordsProvider
type RecordsProvider interface {
	GetRecords(ctx context.Context, group string) ([]models.Record, error)
	Login() string
}

type StatsService struct {
	log             *slog.Logger
	recordsProvider RecordsProvider
}

func NewStatsService(log *slog.Logger, recordsProvider RecordsProvider) *StatsService {
	return &StatsService{
		log:             log,
		recordsProvider: recordsProvider,
	}
}

func (s *StatsService) GetStatistics(ctx context.Context, metric string) (*models.Summary, error) {
	const op = "stats.GetStatistics"

	records, err := s.recordsProvider.GetRecords(ctx, repo.GroupAll)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	login := s.recordsProvider.Login()
	groups, err := Summarize(records, login, metric)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	summary := BuildSummary(records, login, metric)
	summary.Groups = groups

	s.log.Debug("statistics computed",
		slog.String("op", op),
		slog.String("metric", metric),
		slog.Int("records", len(records)),
	)
	return summary, nil
}

// BuildSummary fills the header counts of a summary from the rows themselves.
func BuildSummary(records []models.Record, login, metric string) *models.Summary {
	summary := &models.Summary{
		Login:  login,
		Metric: metric,
		Groups: []models.GroupSummary{},
	}

	aiPRs := map[int]struct{}{}
	nonAIPRs := map[int]struct{}{}
	for _, r := range records {
		if summary.Owner == "" {
			summary.Owner, summary.Repo = r.Owner, r.Repo
		}
		if r.AuthorLogin == login {
			aiPRs[r.PRNumber] = struct{}{}
			summary.AIReviews++
		} else {
			nonAIPRs[r.PRNumber] = struct{}{}
		}
	}
	summary.AIPullRequests = len(aiPRs)
	summary.NonAIPullRequests = len(nonAIPRs)

	return summary
}
