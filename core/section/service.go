package section

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/join"
)

var (
	// errors
	ErrNotFound = errors.New("section not found")
)

type (
	Repository interface {
		QueryAllSections(ctx context.Context) ([]Section, error)
		CreateSection(ctx context.Context, draft Draft) (Section, error)
		UpdateSection(ctx context.Context, id core.ID, draft Draft) (Section, error)
		DeleteSection(ctx context.Context, id core.ID) error
	}

	// StudentDirectory provides the Students dependency snapshot for the
	// per-section membership counts.
	StudentDirectory interface {
		QueryStudentRefs(ctx context.Context) ([]join.StudentRef, error)
	}

	EditSession struct {
		TargetID core.ID
		Draft    Draft
	}

	// Service is the Sections view coordinator.
	Service struct {
		repo     Repository
		students StudentDirectory
		log      core.Logger

		sections    []Section
		studentRefs []join.StudentRef
		loading     bool
		saving      bool
		session     *EditSession
		notif       *core.Notification
	}
)

func NewService(repo Repository, students StudentDirectory, logger core.Logger) *Service {
	return &Service{repo: repo, students: students, log: logger}
}

func (svc *Service) Sections() []Section               { return svc.sections }
func (svc *Service) Loading() bool                     { return svc.loading }
func (svc *Service) Saving() bool                      { return svc.saving }
func (svc *Service) Session() *EditSession             { return svc.session }
func (svc *Service) Notification() *core.Notification { return svc.notif }
func (svc *Service) DismissNotification()              { svc.notif = nil }

// StudentCount recomputes the number of students assigned to the section
// from the current Students snapshot; counts are never cached on Section
// since the Student set changes independently.
func (svc *Service) StudentCount(id core.ID) int {
	return join.CountStudentsInSection(svc.studentRefs, id)
}

func (svc *Service) fail(err error) {
	svc.log.Error("sections: "+err.Error(), err)
	svc.notif = core.NewErrorNotification(err)
}

// Load fetches the Sections collection and the Students dependency
// concurrently; on any failure the previous snapshots are kept and the
// error surfaces as a notification.
func (svc *Service) Load(ctx context.Context) {
	svc.loading = true
	defer func() { svc.loading = false }()

	var (
		sections []Section
		students []join.StudentRef
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sections, err = svc.repo.QueryAllSections(ctx)
		return
	})
	g.Go(func() (err error) {
		students, err = svc.students.QueryStudentRefs(ctx)
		return
	})
	if err := g.Wait(); err != nil {
		svc.fail(err)
		return
	}

	svc.sections = sections
	svc.studentRefs = students
}

func (svc *Service) OpenCreate() {
	svc.session = &EditSession{Draft: NewDraft()}
}

func (svc *Service) OpenEdit(id core.ID) {
	for _, s := range svc.sections {
		if s.ID == id {
			svc.session = &EditSession{TargetID: id, Draft: DraftOf(s)}
			return
		}
	}
	svc.fail(ErrNotFound)
}

func (svc *Service) CloseSession() {
	svc.session = nil
}

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
		updated, err := svc.repo.UpdateSection(ctx, id, svc.session.Draft)
		if err != nil {
			svc.fail(err)
			return
		}
		for i, s := range svc.sections {
			if s.ID == updated.ID {
				svc.sections[i] = updated
				break
			}
		}
		svc.notif = core.NewSuccessNotification("Section updated.")
	} else {
		created, err := svc.repo.CreateSection(ctx, svc.session.Draft)
		if err != nil {
			svc.fail(err)
			return
		}
		svc.sections = append([]Section{created}, svc.sections...)
		svc.notif = core.NewSuccessNotification("Section created.")
	}
	svc.session = nil
}

// RequestDelete emits the delete intent. Deleting a section does not delete
// or reassign its students; they only lose the section assignment display,
// and the confirmation message must say exactly that.
func (svc *Service) RequestDelete(id core.ID) core.DeleteIntent {
	return core.DeleteIntent{ID: id, Message: "Delete this section? Students will lose this section assignment."}
}

func (svc *Service) ConfirmDelete(ctx context.Context, id core.ID) {
	if err := svc.repo.DeleteSection(ctx, id); err != nil {
		svc.fail(err)
		return
	}
	for i, s := range svc.sections {
		if s.ID == id {
			svc.sections = append(svc.sections[:i], svc.sections[i+1:]...)
			break
		}
	}
	svc.notif = core.NewSuccessNotification("Section deleted.")
}
