package dummydb

import (
	"context"
	"sort"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/join"
	"github.com/trezcool/matokeo/core/section"
	"github.com/trezcool/matokeo/core/student"
)

type SectionRepository struct {
	db *sectionTable
}

var (
	_ section.Repository       = (*SectionRepository)(nil) // interface compliance check
	_ student.SectionDirectory = (*SectionRepository)(nil)
)

func NewSectionRepository(db *DB) *SectionRepository {
	return &SectionRepository{db: db.section}
}

// query returns the table contents in the collection's default order: name ascending.
func (repo *SectionRepository) query() []section.Section {
	sections := make([]section.Section, 0, len(repo.db.table))
	for _, s := range repo.db.table {
		sections = append(sections, *s)
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].Name < sections[j].Name })
	return sections
}

func (repo *SectionRepository) QueryAllSections(ctx context.Context) ([]section.Section, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *SectionRepository) CreateSection(ctx context.Context, draft section.Draft) (section.Section, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	s := section.Section{
		ID:          repo.db.nextPK(),
		Name:        draft.Name,
		Description: draft.Description,
	}
	repo.db.table[s.ID] = &s
	return s, nil
}

func (repo *SectionRepository) UpdateSection(ctx context.Context, id core.ID, draft section.Draft) (section.Section, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	s, ok := repo.db.table[id]
	if !ok {
		return section.Section{}, section.ErrNotFound
	}
	s.Name = draft.Name
	s.Description = draft.Description
	return *s, nil
}

func (repo *SectionRepository) DeleteSection(ctx context.Context, id core.ID) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return section.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}

func (repo *SectionRepository) QuerySectionEntries(ctx context.Context) ([]join.Entry, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	sections := repo.query()
	entries := make([]join.Entry, 0, len(sections))
	for _, s := range sections {
		entries = append(entries, join.Entry{ID: s.ID, Name: s.Name})
	}
	return entries, nil
}
