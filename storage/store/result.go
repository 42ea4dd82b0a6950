package store

import (
	"context"
	"net/http"
	"net/url"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/result"
)

const resultsCollection = "results"

type ResultRepository struct {
	c *Client
}

var _ result.Repository = (*ResultRepository)(nil)

func NewResultRepository(c *Client) *ResultRepository {
	return &ResultRepository{c: c}
}

// resultPayload is the wire form of a result draft: marks go out as the
// validated number, never the raw form string.
type resultPayload struct {
	StudentID core.ID `json:"studentId"`
	Subject   string  `json:"subject"`
	Marks     float64 `json:"marks"`
	ExamDate  string  `json:"examDate"`
}

func payloadOf(draft result.Draft) resultPayload {
	return resultPayload{
		StudentID: draft.StudentID,
		Subject:   draft.Subject,
		Marks:     draft.MarksValue(),
		ExamDate:  draft.ExamDate,
	}
}

// QueryAllResults fetches the collection in its default order: exam date
// descending.
func (repo *ResultRepository) QueryAllResults(ctx context.Context) ([]result.Result, error) {
	var results []result.Result
	params := url.Values{"_sort": []string{"examDate"}, "_order": []string{"desc"}}
	if err := repo.c.do(ctx, http.MethodGet, collectionPath(resultsCollection), params, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (repo *ResultRepository) CreateResult(ctx context.Context, draft result.Draft) (result.Result, error) {
	var created result.Result
	if err := repo.c.do(ctx, http.MethodPost, collectionPath(resultsCollection), nil, payloadOf(draft), &created); err != nil {
		return result.Result{}, err
	}
	return created, nil
}

func (repo *ResultRepository) UpdateResult(ctx context.Context, id core.ID, draft result.Draft) (result.Result, error) {
	var updated result.Result
	if err := repo.c.do(ctx, http.MethodPut, recordPath(resultsCollection, id), nil, payloadOf(draft), &updated); err != nil {
		return result.Result{}, err
	}
	return updated, nil
}

func (repo *ResultRepository) DeleteResult(ctx context.Context, id core.ID) error {
	return repo.c.do(ctx, http.MethodDelete, recordPath(resultsCollection, id), nil, nil, nil)
}
