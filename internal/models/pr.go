package models

import "time"

const (
	StateOpen   = "OPEN"
	StateClosed = "CLOSED"
	StateMerged = "MERGED"
)

type PullRequest struct {
	Number    int
	Title     string
	Author    string
	State     string
	IsDraft   bool
	Labels    []string
	Additions int
	Deletions int
	CreatedAt *time.Time
	MergedAt  *time.Time
}

// TimeToMerge returns seconds between creation and merge, or nil if the PR was never merged.
func (pr *PullRequest) TimeToMerge() *float64 {
	if pr.CreatedAt == nil || pr.MergedAt == nil {
		return nil
	}
	secs := pr.MergedAt.Sub(*pr.CreatedAt).Seconds()
	return &secs
}

func (pr *PullRequest) LinesModified() int {
	return pr.Additions + pr.Deletions
}

// PullRequestReviews is a listing entry: a PR number with all of its reviews.
type PullRequestReviews struct {
	Number  int
	Reviews []Review
}
