package student

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/join"
)

var (
	// errors
	ErrNotFound = errors.New("student not found")
)

type (
	Repository interface {
		QueryAllStudents(ctx context.Context) ([]Student, error)
		CreateStudent(ctx context.Context, draft Draft) (Student, error)
		UpdateStudent(ctx context.Context, id core.ID, draft Draft) (Student, error)
		DeleteStudent(ctx context.Context, id core.ID) error
	}

	// SectionDirectory provides the Sections dependency snapshot for joins.
	SectionDirectory interface {
		QuerySectionEntries(ctx context.Context) ([]join.Entry, error)
	}

	// EditSession is the transient state of an in-progress create or edit.
	// A zero TargetID means the draft is bound to no entity (create flow).
	EditSession struct {
		TargetID core.ID
		Draft    Draft
	}

	// Service is the Students view coordinator. It owns its snapshots
	// exclusively; all mutation goes through user- or response-triggered
	// operations, never timers.
	Service struct {
		repo     Repository
		sections SectionDirectory
		log      core.Logger

		students       []Student
		sectionEntries []join.Entry
		loading        bool
		saving         bool
		session        *EditSession
		notif          *core.Notification
	}
)

func NewService(repo Repository, sections SectionDirectory, logger core.Logger) *Service {
	return &Service{repo: repo, sections: sections, log: logger}
}

// Snapshot accessors

func (svc *Service) Students() []Student          { return svc.students }
func (svc *Service) Sections() []join.Entry       { return svc.sectionEntries }
func (svc *Service) Loading() bool                { return svc.loading }
func (svc *Service) Saving() bool                 { return svc.saving }
func (svc *Service) Session() *EditSession        { return svc.session }
func (svc *Service) Notification() *core.Notification { return svc.notif }
func (svc *Service) DismissNotification()         { svc.notif = nil }

// SectionLabel resolves a section assignment against the Sections snapshot.
func (svc *Service) SectionLabel(id core.ID) string {
	return join.SectionLabel(svc.sectionEntries, id)
}

func (svc *Service) fail(err error) {
	svc.log.Error("students: "+err.Error(), err)
	svc.notif = core.NewErrorNotification(err)
}

// Load fetches the Students collection and the Sections dependency
// concurrently. If either fetch fails the whole load is dropped: the
// previous snapshots are kept rather than committing a partial, and the
// failure surfaces as an error notification.
func (svc *Service) Load(ctx context.Context) {
	svc.loading = true
	defer func() { svc.loading = false }()

	var (
		students []Student
		sections []join.Entry
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		students, err = svc.repo.QueryAllStudents(ctx)
		return
	})
	g.Go(func() (err error) {
		sections, err = svc.sections.QuerySectionEntries(ctx)
		return
	})
	if err := g.Wait(); err != nil {
		svc.fail(err)
		return
	}

	svc.students = students
	svc.sectionEntries = sections
}

// OpenCreate resets the edit session to an empty draft bound to no entity.
func (svc *Service) OpenCreate() {
	svc.session = &EditSession{Draft: NewDraft()}
}

// OpenEdit seeds the edit session from the selected student's current values.
func (svc *Service) OpenEdit(id core.ID) {
	for _, s := range svc.students {
		if s.ID == id {
			svc.session = &EditSession{TargetID: id, Draft: DraftOf(s)}
			return
		}
	}
	svc.fail(ErrNotFound)
}

// CloseSession cancels the in-progress create or edit.
func (svc *Service) CloseSession() {
	svc.session = nil
}

// Save validates the draft locally and persists it. A validation failure
// aborts before any network call and leaves the session open; so does a
// store failure. Success replaces the edited entity in place (or prepends
// the created one) and closes the session.
func (svc *Service) Save(ctx context.Context) {
	if svc.session == nil || svc.saving {
		return
	}
	if err := svc.session.Draft.Validate(); err != nil {
		svc.fail(err)
		return
	}

	svc.saving = true
	defer func() { svc.saving = false }()

	if id := svc.session.TargetID; !id.IsZero() {
		updated, err := svc.repo.UpdateStudent(ctx, id, svc.session.Draft)
		if err != nil {
			svc.fail(err)
			return
		}
		for i, s := range svc.students {
			if s.ID == updated.ID {
				svc.students[i] = updated
				break
			}
		}
		svc.notif = core.NewSuccessNotification("Student updated.")
	} else {
		created, err := svc.repo.CreateStudent(ctx, svc.session.Draft)
		if err != nil {
			svc.fail(err)
			return
		}
		svc.students = append([]Student{created}, svc.students...)
		svc.notif = core.NewSuccessNotification("Student created.")
	}
	svc.session = nil
}

// RequestDelete emits the delete intent; the caller must confirm it
// out-of-band before invoking ConfirmDelete.
func (svc *Service) RequestDelete(id core.ID) core.DeleteIntent {
	return core.DeleteIntent{ID: id, Message: "Delete this student?"}
}

// ConfirmDelete issues the delete call. Success removes the student from
// the snapshot; failure leaves the snapshot untouched.
func (svc *Service) ConfirmDelete(ctx context.Context, id core.ID) {
	if err := svc.repo.DeleteStudent(ctx, id); err != nil {
		svc.fail(err)
		return
	}
	for i, s := range svc.students {
		if s.ID == id {
			svc.students = append(svc.students[:i], svc.students[i+1:]...)
			break
		}
	}
	svc.notif = core.NewSuccessNotification("Student deleted.")
}
