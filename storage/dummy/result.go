package dummydb

import (
	"context"
	"sort"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/result"
)

type ResultRepository struct {
	db *resultTable
}

var _ result.Repository = (*ResultRepository)(nil) // interface compliance check

func NewResultRepository(db *DB) *ResultRepository {
	return &ResultRepository{db: db.result}
}

// query returns the table contents in the collection's default order: exam date descending.
func (repo *ResultRepository) query() []result.Result {
	results := make([]result.Result, 0, len(repo.db.table))
	for _, r := range repo.db.table {
		results = append(results, *r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ExamDate > results[j].ExamDate })
	return results
}

func (repo *ResultRepository) QueryAllResults(ctx context.Context) ([]result.Result, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *ResultRepository) CreateResult(ctx context.Context, draft result.Draft) (result.Result, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	r := result.Result{
		ID:        repo.db.nextPK(),
		StudentID: draft.StudentID,
		Subject:   draft.Subject,
		Marks:     draft.MarksValue(),
		ExamDate:  draft.ExamDate,
	}
	repo.db.table[r.ID] = &r
	return r, nil
}

func (repo *ResultRepository) UpdateResult(ctx context.Context, id core.ID, draft result.Draft) (result.Result, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	r, ok := repo.db.table[id]
	if !ok {
		return result.Result{}, result.ErrNotFound
	}
	r.StudentID = draft.StudentID
	r.Subject = draft.Subject
	r.Marks = draft.MarksValue()
	r.ExamDate = draft.ExamDate
	return *r, nil
}

func (repo *ResultRepository) DeleteResult(ctx context.Context, id core.ID) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return result.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
