package ghcli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"dapka/internal/lib"
	"dapka/internal/lib/sl"
	"dapka/internal/models"
)

var ErrMalformedResponse = errors.New("malformed response from gh")

const detailFields = "number,title,state,isDraft,createdAt,mergedAt,additions,deletions,author,labels"

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=CommandRunner --unroll-variadic=false
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Client fetches pull requests by shelling out to the GitHub CLI.
// Authentication is whatever `gh auth login` stored.
type Client struct {
	log    *slog.Logger
	runner CommandRunner
	bin    string
}

func New(log *slog.Logger, runner CommandRunner, bin string) *Client {
	if bin == "" {
		bin = "gh"
	}
	return &Client{
		log:    log,
		runner: runner,
		bin:    bin,
	}
}

type author struct {
	Login string `json:"login"`
}

type label struct {
	Name string `json:"name"`
}

type review struct {
	ID          string  `json:"id"`
	Author      author  `json:"author"`
	Body        string  `json:"body"`
	State       string  `json:"state"`
	SubmittedAt *string `json:"submittedAt"`
}

type pullRequest struct {
	Number    int      `json:"number"`
	Title     string   `json:"title"`
	State     string   `json:"state"`
	IsDraft   bool     `json:"isDraft"`
	CreatedAt *string  `json:"createdAt"`
	MergedAt  *string  `json:"mergedAt"`
	Additions int      `json:"additions"`
	Deletions int      `json:"deletions"`
	Author    author   `json:"author"`
	Labels    []label  `json:"labels"`
	Reviews   []review `json:"reviews"`
}

func repoArg(owner, repo string) string {
	return owner + "/" + repo
}

func (c *Client) listArgs(owner, repo, state string, limit int, fields string) []string {
	return []string{
		"pr", "list",
		"--repo", repoArg(owner, repo),
		"--state", state,
		"-L", strconv.Itoa(limit),
		"--json", fields,
	}
}

func (c *Client) ListPullRequests(ctx context.Context, owner, repo, state string, limit int) ([]int, error) {
	const op = "ghcli.ListPullRequests"

	out, err := c.runner.Run(ctx, c.bin, c.listArgs(owner, repo, state, limit, "number")...)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	var prs []pullRequest
	if err := decode(out, &prs); err != nil {
		return nil, lib.Err(op, err)
	}

	numbers := make([]int, 0, len(prs))
	for _, pr := range prs {
		numbers = append(numbers, pr.Number)
	}

	c.log.Info("listed pull requests",
		slog.String("repo", repoArg(owner, repo)),
		slog.Int("count", len(numbers)),
	)
	return numbers, nil
}

func (c *Client) FetchReviews(ctx context.Context, owner, repo, state string, limit int) ([]models.PullRequestReviews, error) {
	const op = "ghcli.FetchReviews"

	out, err := c.runner.Run(ctx, c.bin, c.listArgs(owner, repo, state, limit, "number,reviews")...)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	var prs []pullRequest
	if err := decode(out, &prs); err != nil {
		return nil, lib.Err(op, err)
	}

	entries := make([]models.PullRequestReviews, 0, len(prs))
	for _, pr := range prs {
		entries = append(entries, models.PullRequestReviews{
			Number:  pr.Number,
			Reviews: c.toReviews(pr.Number, pr.Reviews),
		})
	}

	return entries, nil
}

func (c *Client) FetchPullRequest(ctx context.Context, owner, repo string, number int) (*models.PullRequest, error) {
	const op = "ghcli.FetchPullRequest"

	args := []string{
		"pr", "view", strconv.Itoa(number),
		"--repo", repoArg(owner, repo),
		"--json", detailFields,
	}
	out, err := c.runner.Run(ctx, c.bin, args...)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	var raw pullRequest
	if err := decode(out, &raw); err != nil {
		return nil, lib.Err(op, err)
	}

	pr := &models.PullRequest{
		Number:    raw.Number,
		Title:     raw.Title,
		Author:    raw.Author.Login,
		State:     strings.ToUpper(raw.State),
		IsDraft:   raw.IsDraft,
		Additions: raw.Additions,
		Deletions: raw.Deletions,
		CreatedAt: c.parseTime(raw.Number, "createdAt", raw.CreatedAt),
		MergedAt:  c.parseTime(raw.Number, "mergedAt", raw.MergedAt),
	}
	for _, l := range raw.Labels {
		pr.Labels = append(pr.Labels, l.Name)
	}

	return pr, nil
}

func (c *Client) toReviews(number int, raw []review) []models.Review {
	reviews := make([]models.Review, 0, len(raw))
	for _, r := range raw {
		reviews = append(reviews, models.Review{
			ID:          r.ID,
			AuthorLogin: r.Author.Login,
			Body:        r.Body,
			State:       r.State,
			SubmittedAt: c.parseTime(number, "submittedAt", r.SubmittedAt),
		})
	}
	return reviews
}

// parseTime treats a malformed timestamp as missing so one bad PR does not abort the run.
func (c *Client) parseTime(number int, field string, raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}

	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		c.log.Warn("malformed timestamp, treating as missing",
			slog.Int("pr_number", number),
			slog.String("field", field),
			sl.Err(err),
		)
		return nil
	}
	if t.IsZero() {
		return nil
	}

	t = t.UTC()
	return &t
}

// decode treats empty output as an empty result; gh prints nothing for some empty listings.
func decode(out []byte, v any) error {
	if len(bytes.TrimSpace(out)) == 0 {
		return nil
	}
	if err := json.Unmarshal(out, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
