package collect

import (
	"context"
	"log/slog"
	"slices"

	"dapka/internal/lib"
	"dapka/internal/models"
	"dapka/internal/service"

	"github.com/go-playground/validator/v10"
)

// KnownAILogins are the automated reviewer accounts the tool knows how to measure.
var KnownAILogins = []string{
	"copilot-pull-request-reviewer",
	"github-copilot",
	"coderabbitai",
}

type Options struct {
	Owner           string `validate:"required"`
	Repo            string `validate:"required"`
	State           string `validate:"required,oneof=open closed all merged"`
	Limit           int    `validate:"min=1"`
	Login           string `validate:"required,ai_login"`
	NonAIMultiplier int
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("ai_login", func(fl validator.FieldLevel) bool {
		return slices.Contains(KnownAILogins, fl.Field().String())
	})
	return v
}

func (o Options) Validate() error {
	return validate.Struct(o)
}

type Result struct {
	Partition      *models.Partition
	SampledNonAI   []int
	Records        []models.Record
	DroppedRecords int
}

type CollectService struct {
	log    *slog.Logger
	source service.PullRequestSource
}

func NewCollectService(log *slog.Logger, source service.PullRequestSource) *CollectService {
	return &CollectService{
		log:    log,
		source: source,
	}
}

// Collect fetches, reconciles and flattens one repository into report rows.
// Rows for unmerged PRs are already dropped from the result.
func (s *CollectService) Collect(ctx context.Context, opts Options) (*Result, error) {
	const op = "collect.Collect"
	log := s.log.With(
		slog.String("op", op),
		slog.String("repo", opts.Owner+"/"+opts.Repo),
	)

	if err := opts.Validate(); err != nil {
		return nil, lib.Err(op, err)
	}

	all, err := s.source.ListPullRequests(ctx, opts.Owner, opts.Repo, opts.State, opts.Limit)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	entries, err := s.source.FetchReviews(ctx, opts.Owner, opts.Repo, opts.State, opts.Limit)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	partition := Reconcile(log, entries, all, opts.Login)
	sampled := SampleNonAI(partition.NonAINumbers, len(partition.AINumbers), opts.NonAIMultiplier)

	log.Info("reconciled reviews",
		slog.String("login", opts.Login),
		slog.Int("ai_pull_requests", len(partition.AINumbers)),
		slog.Int("ai_reviews", partition.ReviewCount()),
		slog.Int("non_ai_pull_requests", len(partition.NonAINumbers)),
		slog.Int("non_ai_sampled", len(sampled)),
	)

	records, err := s.buildRecords(ctx, opts, partition, sampled)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	kept, dropped := DropUnmerged(records)
	if dropped > 0 {
		log.Info("dropped rows without time to merge", slog.Int("dropped", dropped))
	}

	return &Result{
		Partition:      partition,
		SampledNonAI:   sampled,
		Records:        kept,
		DroppedRecords: dropped,
	}, nil
}

func (s *CollectService) buildRecords(
	ctx context.Context,
	opts Options,
	partition *models.Partition,
	sampled []int,
) ([]models.Record, error) {
	records := make([]models.Record, 0, partition.ReviewCount()+len(sampled))

	for _, number := range partition.AINumbers {
		pr, err := s.source.FetchPullRequest(ctx, opts.Owner, opts.Repo, number)
		if err != nil {
			return nil, err
		}
		for _, review := range partition.AIReviews[number] {
			records = append(records, reviewRecord(opts.Owner, opts.Repo, pr, review))
		}
	}

	for _, number := range sampled {
		pr, err := s.source.FetchPullRequest(ctx, opts.Owner, opts.Repo, number)
		if err != nil {
			return nil, err
		}
		records = append(records, nonAIRecord(opts.Owner, opts.Repo, pr))
	}

	return records, nil
}
