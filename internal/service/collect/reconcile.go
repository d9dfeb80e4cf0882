package collect

import (
	"log/slog"

	"dapka/internal/models"
)

// Reconcile splits the listing into PRs reviewed by login and the rest.
// PR numbers are the join key; AI-reviewed numbers missing from all are dropped
// so that AINumbers ∪ NonAINumbers stays a subset of all.
func Reconcile(log *slog.Logger, entries []models.PullRequestReviews, all []int, login string) *models.Partition {
	p := &models.Partition{
		Login:        login,
		AIReviews:    make(map[int][]models.Review),
		AINumbers:    []int{},
		NonAINumbers: []int{},
	}

	listed := make(map[int]struct{}, len(all))
	for _, n := range all {
		listed[n] = struct{}{}
	}

	for _, entry := range entries {
		var matched []models.Review
		for _, r := range entry.Reviews {
			if r.AuthorLogin == login {
				matched = append(matched, r)
			}
		}
		if len(matched) == 0 {
			continue
		}

		if _, ok := listed[entry.Number]; !ok {
			log.Warn("reviewed pull request missing from listing, skipping",
				slog.Int("pr_number", entry.Number),
			)
			continue
		}

		if _, seen := p.AIReviews[entry.Number]; !seen {
			p.AINumbers = append(p.AINumbers, entry.Number)
		}
		p.AIReviews[entry.Number] = append(p.AIReviews[entry.Number], matched...)
	}

	seen := make(map[int]struct{}, len(all))
	for _, n := range all {
		if _, ok := p.AIReviews[n]; ok {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		p.NonAINumbers = append(p.NonAINumbers, n)
	}

	return p
}

// SampleNonAI keeps the first multiplier×aiCount non-AI numbers so both groups
// stay comparable in size. multiplier <= 0 keeps everything.
func SampleNonAI(nonAI []int, aiCount, multiplier int) []int {
	if multiplier <= 0 {
		return nonAI
	}
	n := multiplier * aiCount
	if n >= len(nonAI) {
		return nonAI
	}
	return nonAI[:n]
}
