package models

import "time"

type Review struct {
	ID          string
	AuthorLogin string
	Body        string
	State       string
	SubmittedAt *time.Time
}

// Partition splits PR numbers by whether the target login reviewed them.
type Partition struct {
	Login        string
	AIReviews    map[int][]Review
	AINumbers    []int
	NonAINumbers []int
}

func (p *Partition) ReviewCount() int {
	n := 0
	for _, reviews := range p.AIReviews {
		n += len(reviews)
	}
	return n
}
