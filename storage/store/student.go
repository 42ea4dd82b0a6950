package store

import (
	"context"
	"net/http"
	"net/url"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/join"
	"github.com/trezcool/matokeo/core/result"
	"github.com/trezcool/matokeo/core/section"
	"github.com/trezcool/matokeo/core/student"
)

const studentsCollection = "students"

// StudentRepository also serves as the students directory for the Sections
// and Results coordinators.
type StudentRepository struct {
	c *Client
}

var (
	_ student.Repository       = (*StudentRepository)(nil)
	_ section.StudentDirectory = (*StudentRepository)(nil)
	_ result.StudentDirectory  = (*StudentRepository)(nil)
)

func NewStudentRepository(c *Client) *StudentRepository {
	return &StudentRepository{c: c}
}

// queryAll fetches the collection in its default order: name ascending.
func (repo *StudentRepository) queryAll(ctx context.Context) ([]student.Student, error) {
	var students []student.Student
	params := url.Values{"_sort": []string{"name"}}
	if err := repo.c.do(ctx, http.MethodGet, collectionPath(studentsCollection), params, nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (repo *StudentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	return repo.queryAll(ctx)
}

func (repo *StudentRepository) CreateStudent(ctx context.Context, draft student.Draft) (student.Student, error) {
	var created student.Student
	if err := repo.c.do(ctx, http.MethodPost, collectionPath(studentsCollection), nil, draft, &created); err != nil {
		return student.Student{}, err
	}
	return created, nil
}

func (repo *StudentRepository) UpdateStudent(ctx context.Context, id core.ID, draft student.Draft) (student.Student, error) {
	var updated student.Student
	if err := repo.c.do(ctx, http.MethodPut, recordPath(studentsCollection, id), nil, draft, &updated); err != nil {
		return student.Student{}, err
	}
	return updated, nil
}

func (repo *StudentRepository) DeleteStudent(ctx context.Context, id core.ID) error {
	return repo.c.do(ctx, http.MethodDelete, recordPath(studentsCollection, id), nil, nil, nil)
}

func (repo *StudentRepository) QueryStudentEntries(ctx context.Context) ([]join.Entry, error) {
	students, err := repo.queryAll(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]join.Entry, 0, len(students))
	for _, s := range students {
		entries = append(entries, join.Entry{ID: s.ID, Name: s.Name})
	}
	return entries, nil
}

func (repo *StudentRepository) QueryStudentRefs(ctx context.Context) ([]join.StudentRef, error) {
	students, err := repo.queryAll(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]join.StudentRef, 0, len(students))
	for _, s := range students {
		refs = append(refs, join.StudentRef{ID: s.ID, SectionID: s.SectionID})
	}
	return refs, nil
}
