package repo

import (
	"context"
	"fmt"

	"dapka/internal/models"
)

const (
	GroupAI    = "ai"
	GroupNonAI = "non_ai"
	GroupAll   = "all"
)

// RecordsRepo serves an immutable, already collected record table.
type RecordsRepo struct {
	records []models.Record
	login   string
}

func NewRecordsRepo(records []models.Record, login string) *RecordsRepo {
	return &RecordsRepo{
		records: records,
		login:   login,
	}
}

func (r *RecordsRepo) Login() string {
	return r.login
}

// GetRecords returns rows of the group: ai rows are authored by the target login,
// non_ai rows are everything else.
func (r *RecordsRepo) GetRecords(ctx context.Context, group string) ([]models.Record, error) {
	const op = "records_repo.GetRecords"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := make([]models.Record, 0, len(r.records))
	for _, rec := range r.records {
		isAI := rec.AuthorLogin == r.login
		switch group {
		case GroupAll:
		case GroupAI:
			if !isAI {
				continue
			}
		case GroupNonAI:
			if isAI {
				continue
			}
		default:
			return nil, fmt.Errorf("%s: %w: %q", op, ErrUnknownGroup, group)
		}
		res = append(res, rec)
	}

	return res, nil
}

func (r *RecordsRepo) GetRecordByReviewID(ctx context.Context, reviewID string) (*models.Record, error) {
	const op = "records_repo.GetRecordByReviewID"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range r.records {
		if id := r.records[i].ReviewID; id != nil && *id == reviewID {
			rec := r.records[i]
			return &rec, nil
		}
	}

	return nil, ErrNotFound
}
