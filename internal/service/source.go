package service

import (
	"context"

	"dapka/internal/models"
)

const (
	StateOpen   = "open"
	StateClosed = "closed"
	StateAll    = "all"
	StateMerged = "merged"
)

// PullRequestSource fetches pull-request snapshots for one repository.
//
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PullRequestSource
type PullRequestSource interface {
	ListPullRequests(ctx context.Context, owner, repo, state string, limit int) ([]int, error)
	FetchReviews(ctx context.Context, owner, repo, state string, limit int) ([]models.PullRequestReviews, error)
	FetchPullRequest(ctx context.Context, owner, repo string, number int) (*models.PullRequest, error)
}
