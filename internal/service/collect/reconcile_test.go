package collect_test

import (
	"testing"

	"dapka/internal/lib/sl"
	"dapka/internal/models"
	"dapka/internal/service/collect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const copilot = "copilot-pull-request-reviewer"

func review(id, login string) models.Review {
	return models.Review{ID: id, AuthorLogin: login, State: "COMMENTED"}
}

func TestReconcile_Scenario(t *testing.T) {
	entries := []models.PullRequestReviews{
		{Number: 1, Reviews: []models.Review{review("r1", copilot)}},
		{Number: 2, Reviews: []models.Review{}},
		{Number: 3, Reviews: []models.Review{review("r3", copilot)}},
	}

	p := collect.Reconcile(sl.NewDiscardLogger(), entries, []int{1, 2, 3}, copilot)

	assert.Equal(t, []int{1, 3}, p.AINumbers)
	assert.Equal(t, 2, p.ReviewCount())
	assert.Equal(t, []int{2}, p.NonAINumbers)
}

func TestReconcile_OtherLoginsNeverInAIPartition(t *testing.T) {
	entries := []models.PullRequestReviews{
		{Number: 1, Reviews: []models.Review{review("a", "alice"), review("b", "coderabbitai")}},
		{Number: 2, Reviews: []models.Review{review("c", copilot), review("d", "alice")}},
	}

	p := collect.Reconcile(sl.NewDiscardLogger(), entries, []int{1, 2}, copilot)

	assert.Equal(t, []int{2}, p.AINumbers)
	for _, reviews := range p.AIReviews {
		for _, r := range reviews {
			assert.Equal(t, copilot, r.AuthorLogin)
		}
	}
	assert.Equal(t, []int{1}, p.NonAINumbers)
}

func TestReconcile_MultipleReviewsKept(t *testing.T) {
	entries := []models.PullRequestReviews{
		{Number: 9, Reviews: []models.Review{review("x", copilot), review("y", copilot)}},
	}

	p := collect.Reconcile(sl.NewDiscardLogger(), entries, []int{9}, copilot)

	require.Len(t, p.AIReviews[9], 2)
	assert.Equal(t, 2, p.ReviewCount())
}

func TestReconcile_SetInvariants(t *testing.T) {
	all := []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 4}
	entries := []models.PullRequestReviews{
		{Number: 9, Reviews: []models.Review{review("a", copilot)}},
		{Number: 6, Reviews: []models.Review{review("b", copilot)}},
		{Number: 4, Reviews: []models.Review{review("c", "bob")}},
		// not part of the listing
		{Number: 42, Reviews: []models.Review{review("d", copilot)}},
	}

	p := collect.Reconcile(sl.NewDiscardLogger(), entries, all, copilot)

	universe := map[int]bool{}
	for _, n := range all {
		universe[n] = true
	}
	ai := map[int]bool{}
	for _, n := range p.AINumbers {
		ai[n] = true
		assert.True(t, universe[n], "ai number %d outside the listing", n)
	}
	for _, n := range p.NonAINumbers {
		assert.False(t, ai[n], "non-ai number %d is also ai", n)
		assert.True(t, universe[n], "non-ai number %d outside the listing", n)
	}

	assert.Equal(t, []int{9, 6}, p.AINumbers)
	assert.Equal(t, []int{10, 8, 7, 5, 4, 3, 2, 1}, p.NonAINumbers)
}

func TestSampleNonAI(t *testing.T) {
	nonAI := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{1, 2, 3, 4}, collect.SampleNonAI(nonAI, 2, 2))
	assert.Equal(t, nonAI, collect.SampleNonAI(nonAI, 5, 2))
	assert.Equal(t, nonAI, collect.SampleNonAI(nonAI, 1, 0))
	assert.Equal(t, []int{1, 2, 3}, collect.SampleNonAI(nonAI, 1, 3))
	assert.Empty(t, collect.SampleNonAI(nonAI, 0, 2))
}
