package models

import (
	"strconv"
	"time"
)

// NonAIReviewLogin is the author_login placed on rows for PRs the target login never reviewed.
const NonAIReviewLogin = "Non-AI Review"

const (
	ColPRNumber    = "pr_number"
	ColReviewID    = "review_id"
	ColAuthorLogin = "author_login"
	ColBody        = "body"
	ColReviewState = "review_state"
	ColReviewedAt  = "reviewed_at"
	ColOwner       = "owner"
	ColRepo        = "repo"
	ColAdditions   = "additions"
	ColDeletions   = "deletions"
	ColTimeToMerge = "time_to_merge_in_seconds"
)

// RecordColumns is the CSV header, in order.
var RecordColumns = []string{
	ColPRNumber,
	ColReviewID,
	ColAuthorLogin,
	ColBody,
	ColReviewState,
	ColReviewedAt,
	ColOwner,
	ColRepo,
	ColAdditions,
	ColDeletions,
	ColTimeToMerge,
}

// NumericColumns can be used as a metric for statistics and plots.
var NumericColumns = []string{ColAdditions, ColDeletions, ColTimeToMerge}

type Record struct {
	PRNumber    int
	ReviewID    *string
	AuthorLogin string
	Body        string
	ReviewState string
	ReviewedAt  *time.Time
	Owner       string
	Repo        string
	Additions   int
	Deletions   int
	TimeToMerge *float64
}

// Metric returns the numeric value of a column; ok is false for unknown or null columns.
func (r *Record) Metric(column string) (float64, bool) {
	switch column {
	case ColAdditions:
		return float64(r.Additions), true
	case ColDeletions:
		return float64(r.Deletions), true
	case ColTimeToMerge:
		if r.TimeToMerge == nil {
			return 0, false
		}
		return *r.TimeToMerge, true
	case ColPRNumber:
		return float64(r.PRNumber), true
	}
	return 0, false
}

// Value renders one column as text; null values render as "".
func (r *Record) Value(column string) string {
	switch column {
	case ColPRNumber:
		return strconv.Itoa(r.PRNumber)
	case ColReviewID:
		if r.ReviewID != nil {
			return *r.ReviewID
		}
	case ColAuthorLogin:
		return r.AuthorLogin
	case ColBody:
		return r.Body
	case ColReviewState:
		return r.ReviewState
	case ColReviewedAt:
		if r.ReviewedAt != nil {
			return r.ReviewedAt.UTC().Format(time.RFC3339)
		}
	case ColOwner:
		return r.Owner
	case ColRepo:
		return r.Repo
	case ColAdditions:
		return strconv.Itoa(r.Additions)
	case ColDeletions:
		return strconv.Itoa(r.Deletions)
	case ColTimeToMerge:
		if r.TimeToMerge != nil {
			return strconv.FormatFloat(*r.TimeToMerge, 'f', -1, 64)
		}
	}
	return ""
}

func (r *Record) LinesModified() int {
	return r.Additions + r.Deletions
}
