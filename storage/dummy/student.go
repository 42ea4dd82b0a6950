package dummydb

import (
	"context"
	"sort"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/join"
	"github.com/trezcool/matokeo/core/result"
	"github.com/trezcool/matokeo/core/section"
	"github.com/trezcool/matokeo/core/student"
)

type StudentRepository struct {
	db *studentTable
}

var (
	_ student.Repository       = (*StudentRepository)(nil) // interface compliance check
	_ section.StudentDirectory = (*StudentRepository)(nil)
	_ result.StudentDirectory  = (*StudentRepository)(nil)
)

func NewStudentRepository(db *DB) *StudentRepository {
	return &StudentRepository{db: db.student}
}

// query returns the table contents in the collection's default order: name ascending.
func (repo *StudentRepository) query() []student.Student {
	students := make([]student.Student, 0, len(repo.db.table))
	for _, s := range repo.db.table {
		students = append(students, *s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].Name < students[j].Name })
	return students
}

func (repo *StudentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *StudentRepository) CreateStudent(ctx context.Context, draft student.Draft) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	s := student.Student{
		ID:             repo.db.nextPK(),
		Name:           draft.Name,
		Email:          draft.Email,
		SectionID:      draft.SectionID,
		EnrollmentDate: draft.EnrollmentDate,
	}
	repo.db.table[s.ID] = &s
	return s, nil
}

func (repo *StudentRepository) UpdateStudent(ctx context.Context, id core.ID, draft student.Draft) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	s, ok := repo.db.table[id]
	if !ok {
		return student.Student{}, student.ErrNotFound
	}
	s.Name = draft.Name
	s.Email = draft.Email
	s.SectionID = draft.SectionID
	s.EnrollmentDate = draft.EnrollmentDate
	return *s, nil
}

func (repo *StudentRepository) DeleteStudent(ctx context.Context, id core.ID) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return student.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}

func (repo *StudentRepository) QueryStudentEntries(ctx context.Context) ([]join.Entry, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	students := repo.query()
	entries := make([]join.Entry, 0, len(students))
	for _, s := range students {
		entries = append(entries, join.Entry{ID: s.ID, Name: s.Name})
	}
	return entries, nil
}

func (repo *StudentRepository) QueryStudentRefs(ctx context.Context) ([]join.StudentRef, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	students := repo.query()
	refs := make([]join.StudentRef, 0, len(students))
	for _, s := range students {
		refs = append(refs, join.StudentRef{ID: s.ID, SectionID: s.SectionID})
	}
	return refs, nil
}
