// Package join computes display values and counts by cross-referencing one
// entity snapshot against another via a foreign identifier. All functions
// are pure, synchronous, read-only projections over caller-supplied
// snapshots: no caching, no I/O, recomputed on every call so they always
// reflect the current snapshots.
package join

import "github.com/trezcool/matokeo/core"

// Placeholders rendered for dangling references. The store performs no
// cascading deletes, so a Student may point at a deleted Section and a
// Result at a deleted Student; neither is an error.
const (
	SectionPlaceholder = "unassigned"
	StudentPlaceholder = "unknown"
)

type (
	// Entry is the label projection of an entity collection: just enough
	// of a Section or Student to resolve a foreign id to a display name.
	Entry struct {
		ID   core.ID `json:"id"`
		Name string  `json:"name"`
	}

	// StudentRef is the membership projection of the Students collection.
	StudentRef struct {
		ID        core.ID `json:"id"`
		SectionID core.ID `json:"sectionId"`
	}
)

func label(entries []Entry, id core.ID, placeholder string) string {
	if !id.IsZero() {
		for _, e := range entries {
			if e.ID == id {
				return e.Name
			}
		}
	}
	return placeholder
}

// SectionLabel resolves a Student's section assignment to the section name,
// or the "unassigned" placeholder when the section no longer exists.
func SectionLabel(sections []Entry, id core.ID) string {
	return label(sections, id, SectionPlaceholder)
}

// StudentLabel resolves a Result's student reference to the student name,
// or the "unknown" placeholder when the student no longer exists.
func StudentLabel(students []Entry, id core.ID) string {
	return label(students, id, StudentPlaceholder)
}

// CountStudentsInSection counts students assigned to the given section by
// linear scan of the current Students snapshot.
func CountStudentsInSection(students []StudentRef, sectionID core.ID) int {
	var n int
	for _, s := range students {
		if !s.SectionID.IsZero() && s.SectionID == sectionID {
			n++
		}
	}
	return n
}
