package store

import (
	"context"
	"net/http"
	"net/url"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/join"
	"github.com/trezcool/matokeo/core/section"
	"github.com/trezcool/matokeo/core/student"
)

const sectionsCollection = "sections"

// SectionRepository also serves as the sections directory for the Students
// coordinator.
type SectionRepository struct {
	c *Client
}

var (
	_ section.Repository       = (*SectionRepository)(nil)
	_ student.SectionDirectory = (*SectionRepository)(nil)
)

func NewSectionRepository(c *Client) *SectionRepository {
	return &SectionRepository{c: c}
}

// queryAll fetches the collection in its default order: name ascending.
func (repo *SectionRepository) queryAll(ctx context.Context) ([]section.Section, error) {
	var sections []section.Section
	params := url.Values{"_sort": []string{"name"}}
	if err := repo.c.do(ctx, http.MethodGet, collectionPath(sectionsCollection), params, nil, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func (repo *SectionRepository) QueryAllSections(ctx context.Context) ([]section.Section, error) {
	return repo.queryAll(ctx)
}

func (repo *SectionRepository) CreateSection(ctx context.Context, draft section.Draft) (section.Section, error) {
	var created section.Section
	if err := repo.c.do(ctx, http.MethodPost, collectionPath(sectionsCollection), nil, draft, &created); err != nil {
		return section.Section{}, err
	}
	return created, nil
}

func (repo *SectionRepository) UpdateSection(ctx context.Context, id core.ID, draft section.Draft) (section.Section, error) {
	var updated section.Section
	if err := repo.c.do(ctx, http.MethodPut, recordPath(sectionsCollection, id), nil, draft, &updated); err != nil {
		return section.Section{}, err
	}
	return updated, nil
}

func (repo *SectionRepository) DeleteSection(ctx context.Context, id core.ID) error {
	return repo.c.do(ctx, http.MethodDelete, recordPath(sectionsCollection, id), nil, nil, nil)
}

func (repo *SectionRepository) QuerySectionEntries(ctx context.Context) ([]join.Entry, error) {
	sections, err := repo.queryAll(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]join.Entry, 0, len(sections))
	for _, s := range sections {
		entries = append(entries, join.Entry{ID: s.ID, Name: s.Name})
	}
	return entries, nil
}
