package ghcli_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dapka/internal/client/ghcli"
	"dapka/internal/client/ghcli/mocks"
	"dapka/internal/client/runner"
	"dapka/internal/lib/sl"
	"dapka/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func listArgs(state, limit, fields string) []string {
	return []string{"pr", "list", "--repo", "acme/widgets", "--state", state, "-L", limit, "--json", fields}
}

func TestClient_ListPullRequests_Success(t *testing.T) {
	ctx := context.Background()
	r := mocks.NewCommandRunner(t)
	r.On("Run", ctx, "gh", listArgs("all", "50000", "number")).
		Return([]byte(`[{"number":3},{"number":2},{"number":1}]`), nil).Once()

	c := ghcli.New(sl.NewDiscardLogger(), r, "gh")
	numbers, err := c.ListPullRequests(ctx, "acme", "widgets", "all", 50000)

	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, numbers)
}

func TestClient_ListPullRequests_Empty(t *testing.T) {
	ctx := context.Background()
	r := mocks.NewCommandRunner(t)
	r.On("Run", ctx, "gh", listArgs("merged", "10", "number")).Return([]byte("[]\n"), nil).Once()

	c := ghcli.New(sl.NewDiscardLogger(), r, "")
	numbers, err := c.ListPullRequests(ctx, "acme", "widgets", "merged", 10)

	require.NoError(t, err)
	assert.Empty(t, numbers)
}

func TestClient_ListPullRequests_CommandError(t *testing.T) {
	ctx := context.Background()
	cmdErr := &runner.CommandError{Command: "gh pr list", ExitCode: 1, Stderr: "could not resolve to a Repository"}

	r := mocks.NewCommandRunner(t)
	r.On("Run", ctx, "gh", mock.Anything).Return(nil, cmdErr).Once()

	c := ghcli.New(sl.NewDiscardLogger(), r, "gh")
	numbers, err := c.ListPullRequests(ctx, "acme", "widgets", "all", 5)

	assert.Nil(t, numbers)
	var got *runner.CommandError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 1, got.ExitCode)
}

func TestClient_ListPullRequests_MalformedJSON(t *testing.T) {
	ctx := context.Background()
	r := mocks.NewCommandRunner(t)
	r.On("Run", ctx, "gh", mock.Anything).Return([]byte(`{not json`), nil).Once()

	c := ghcli.New(sl.NewDiscardLogger(), r, "gh")
	_, err := c.ListPullRequests(ctx, "acme", "widgets", "all", 5)

	assert.ErrorIs(t, err, ghcli.ErrMalformedResponse)
}

func TestClient_FetchReviews_Success(t *testing.T) {
	ctx := context.Background()
	out := `[
	  {"number": 1, "reviews": [
	    {"id": "PRR_1", "author": {"login": "copilot-pull-request-reviewer"}, "body": "looks fine",
	     "state": "COMMENTED", "submittedAt": "2024-01-01T10:00:00Z"},
	    {"id": "PRR_2", "author": {"login": "alice"}, "body": "", "state": "APPROVED",
	     "submittedAt": "2024-01-01T11:00:00Z"}
	  ]},
	  {"number": 2, "reviews": []}
	]`

	r := mocks.NewCommandRunner(t)
	r.On("Run", ctx, "gh", listArgs("closed", "100", "number,reviews")).Return([]byte(out), nil).Once()

	c := ghcli.New(sl.NewDiscardLogger(), r, "gh")
	entries, err := c.FetchReviews(ctx, "acme", "widgets", "closed", 100)

	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Number)
	require.Len(t, entries[0].Reviews, 2)
	assert.Equal(t, "PRR_1", entries[0].Reviews[0].ID)
	assert.Equal(t, "copilot-pull-request-reviewer", entries[0].Reviews[0].AuthorLogin)
	assert.Equal(t, "COMMENTED", entries[0].Reviews[0].State)
	require.NotNil(t, entries[0].Reviews[0].SubmittedAt)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), *entries[0].Reviews[0].SubmittedAt)

	assert.Equal(t, 2, entries[1].Number)
	assert.Empty(t, entries[1].Reviews)
}

func TestClient_FetchPullRequest_Merged(t *testing.T) {
	ctx := context.Background()
	out := `{"number": 7, "title": "Add widget", "state": "MERGED", "isDraft": false,
	  "createdAt": "2024-01-01T00:00:00Z", "mergedAt": "2024-01-02T00:00:00Z",
	  "additions": 12, "deletions": 3, "author": {"login": "bob"},
	  "labels": [{"name": "enhancement"}]}`

	r := mocks.NewCommandRunner(t)
	r.On("Run", ctx, "gh", []string{
		"pr", "view", "7", "--repo", "acme/widgets", "--json",
		"number,title,state,isDraft,createdAt,mergedAt,additions,deletions,author,labels",
	}).Return([]byte(out), nil).Once()

	c := ghcli.New(sl.NewDiscardLogger(), r, "gh")
	pr, err := c.FetchPullRequest(ctx, "acme", "widgets", 7)

	require.NoError(t, err)
	assert.Equal(t, 7, pr.Number)
	assert.Equal(t, models.StateMerged, pr.State)
	assert.Equal(t, "bob", pr.Author)
	assert.Equal(t, []string{"enhancement"}, pr.Labels)
	assert.Equal(t, 12, pr.Additions)
	assert.Equal(t, 3, pr.Deletions)
	require.NotNil(t, pr.TimeToMerge())
	assert.Equal(t, 86400.0, *pr.TimeToMerge())
}

func TestClient_FetchPullRequest_UnmergedAndMalformed(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"null merge":      `{"number": 8, "state": "OPEN", "createdAt": "2024-01-01T00:00:00Z", "mergedAt": null}`,
		"zero merge":      `{"number": 8, "state": "CLOSED", "createdAt": "2024-01-01T00:00:00Z", "mergedAt": "0001-01-01T00:00:00Z"}`,
		"malformed merge": `{"number": 8, "state": "MERGED", "createdAt": "2024-01-01T00:00:00Z", "mergedAt": "yesterday"}`,
	}

	for name, out := range cases {
		t.Run(name, func(t *testing.T) {
			r := mocks.NewCommandRunner(t)
			r.On("Run", ctx, "gh", mock.Anything).Return([]byte(out), nil).Once()

			c := ghcli.New(sl.NewDiscardLogger(), r, "gh")
			pr, err := c.FetchPullRequest(ctx, "acme", "widgets", 8)

			require.NoError(t, err)
			assert.Nil(t, pr.MergedAt)
			assert.Nil(t, pr.TimeToMerge())
		})
	}
}
