package github

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dapka/internal/lib"
	"dapka/internal/models"

	gh "github.com/google/go-github/v56/github"
	"golang.org/x/oauth2"
)

const perPage = 100

// Client fetches pull requests through the GitHub REST API.
type Client struct {
	log *slog.Logger
	gh  *gh.Client
}

// New builds an API client authenticated with token. An empty token makes
// anonymous requests, which GitHub rate limits heavily.
func New(ctx context.Context, log *slog.Logger, token string, timeout time.Duration) *Client {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		hc = oauth2.NewClient(ctx, ts)
	} else {
		hc = &http.Client{}
	}
	hc.Timeout = timeout

	return NewWithClient(log, gh.NewClient(hc))
}

func NewWithClient(log *slog.Logger, client *gh.Client) *Client {
	return &Client{
		log: log,
		gh:  client,
	}
}

// apiState maps a CLI state filter onto the REST API one. The API has no
// "merged" state, so merged PRs are closed PRs with a merge time.
func apiState(state string) (string, bool) {
	if state == "merged" {
		return "closed", true
	}
	return state, false
}

func (c *Client) listPullRequests(ctx context.Context, owner, repo, state string, limit int) ([]*gh.PullRequest, error) {
	const op = "github.listPullRequests"

	apiSt, mergedOnly := apiState(state)
	opt := &gh.PullRequestListOptions{
		State:     apiSt,
		Sort:      "created",
		Direction: "desc",
		ListOptions: gh.ListOptions{
			PerPage: perPage,
		},
	}

	var all []*gh.PullRequest
	for {
		prs, resp, err := c.gh.PullRequests.List(ctx, owner, repo, opt)
		if err != nil {
			return nil, lib.Err(op, err)
		}

		for _, pr := range prs {
			if mergedOnly && pr.MergedAt == nil {
				continue
			}
			all = append(all, pr)
			if limit > 0 && len(all) >= limit {
				return all, nil
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return all, nil
}

func (c *Client) ListPullRequests(ctx context.Context, owner, repo, state string, limit int) ([]int, error) {
	const op = "github.ListPullRequests"

	prs, err := c.listPullRequests(ctx, owner, repo, state, limit)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	numbers := make([]int, 0, len(prs))
	for _, pr := range prs {
		numbers = append(numbers, pr.GetNumber())
	}

	c.log.Info("listed pull requests",
		slog.String("repo", owner+"/"+repo),
		slog.Int("count", len(numbers)),
	)
	return numbers, nil
}

func (c *Client) FetchReviews(ctx context.Context, owner, repo, state string, limit int) ([]models.PullRequestReviews, error) {
	const op = "github.FetchReviews"

	prs, err := c.listPullRequests(ctx, owner, repo, state, limit)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	entries := make([]models.PullRequestReviews, 0, len(prs))
	for _, pr := range prs {
		reviews, err := c.listReviews(ctx, owner, repo, pr.GetNumber())
		if err != nil {
			return nil, lib.Err(op, err)
		}
		entries = append(entries, models.PullRequestReviews{
			Number:  pr.GetNumber(),
			Reviews: reviews,
		})
	}

	return entries, nil
}

func (c *Client) listReviews(ctx context.Context, owner, repo string, number int) ([]models.Review, error) {
	const op = "github.listReviews"

	opt := &gh.ListOptions{PerPage: perPage}
	reviews := []models.Review{}
	for {
		page, resp, err := c.gh.PullRequests.ListReviews(ctx, owner, repo, number, opt)
		if err != nil {
			return nil, lib.Err(op, err)
		}

		for _, r := range page {
			reviews = append(reviews, toReview(r))
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return reviews, nil
}

func (c *Client) FetchPullRequest(ctx context.Context, owner, repo string, number int) (*models.PullRequest, error) {
	const op = "github.FetchPullRequest"

	pr, _, err := c.gh.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return toPullRequest(pr), nil
}

func toPullRequest(pr *gh.PullRequest) *models.PullRequest {
	state := strings.ToUpper(pr.GetState())
	if pr.MergedAt != nil {
		state = models.StateMerged
	}

	res := &models.PullRequest{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		Author:    pr.GetUser().GetLogin(),
		State:     state,
		IsDraft:   pr.GetDraft(),
		Additions: pr.GetAdditions(),
		Deletions: pr.GetDeletions(),
		CreatedAt: timestamp(pr.CreatedAt),
		MergedAt:  timestamp(pr.MergedAt),
	}
	for _, l := range pr.Labels {
		res.Labels = append(res.Labels, l.GetName())
	}
	return res
}

// toReview prefers the node id so ids match what the gh CLI reports.
func toReview(r *gh.PullRequestReview) models.Review {
	id := r.GetNodeID()
	if id == "" {
		id = strconv.FormatInt(r.GetID(), 10)
	}
	return models.Review{
		ID:          id,
		AuthorLogin: r.GetUser().GetLogin(),
		Body:        r.GetBody(),
		State:       r.GetState(),
		SubmittedAt: timestamp(r.SubmittedAt),
	}
}

func timestamp(ts *gh.Timestamp) *time.Time {
	if ts == nil || ts.IsZero() {
		return nil
	}
	t := ts.Time.UTC()
	return &t
}
