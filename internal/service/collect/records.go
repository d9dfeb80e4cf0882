package collect

import (
	"dapka/internal/models"
)

func reviewRecord(owner, repo string, pr *models.PullRequest, review models.Review) models.Record {
	id := review.ID
	return models.Record{
		PRNumber:    pr.Number,
		ReviewID:    &id,
		AuthorLogin: review.AuthorLogin,
		Body:        review.Body,
		ReviewState: review.State,
		ReviewedAt:  review.SubmittedAt,
		Owner:       owner,
		Repo:        repo,
		Additions:   pr.Additions,
		Deletions:   pr.Deletions,
		TimeToMerge: pr.TimeToMerge(),
	}
}

func nonAIRecord(owner, repo string, pr *models.PullRequest) models.Record {
	return models.Record{
		PRNumber:    pr.Number,
		AuthorLogin: models.NonAIReviewLogin,
		Owner:       owner,
		Repo:        repo,
		Additions:   pr.Additions,
		Deletions:   pr.Deletions,
		TimeToMerge: pr.TimeToMerge(),
	}
}

// DropUnmerged removes rows without a time-to-merge and reports how many went.
func DropUnmerged(records []models.Record) ([]models.Record, int) {
	kept := make([]models.Record, 0, len(records))
	for _, r := range records {
		if r.TimeToMerge == nil {
			continue
		}
		kept = append(kept, r)
	}
	return kept, len(records) - len(kept)
}
