package api

import (
	"time"

	"dapka/internal/models"
)

type RecordSchema struct {
	PRNumber    int        `json:"pr_number"`
	ReviewID    *string    `json:"review_id"`
	AuthorLogin string     `json:"author_login"`
	Body        string     `json:"body"`
	ReviewState string     `json:"review_state"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	Owner       string     `json:"owner"`
	Repo        string     `json:"repo"`
	Additions   int        `json:"additions"`
	Deletions   int        `json:"deletions"`
	TimeToMerge *float64   `json:"time_to_merge_in_seconds"`
}

func ToRecordSchema(r models.Record) RecordSchema {
	return RecordSchema{
		PRNumber:    r.PRNumber,
		ReviewID:    r.ReviewID,
		AuthorLogin: r.AuthorLogin,
		Body:        r.Body,
		ReviewState: r.ReviewState,
		ReviewedAt:  r.ReviewedAt,
		Owner:       r.Owner,
		Repo:        r.Repo,
		Additions:   r.Additions,
		Deletions:   r.Deletions,
		TimeToMerge: r.TimeToMerge,
	}
}

func ToRecordSchemas(records []models.Record) []RecordSchema {
	res := make([]RecordSchema, 0, len(records))
	for _, r := range records {
		res = append(res, ToRecordSchema(r))
	}
	return res
}
