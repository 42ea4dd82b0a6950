package result

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/join"
)

var (
	// errors
	ErrNotFound = errors.New("result not found")
)

type (
	Repository interface {
		QueryAllResults(ctx context.Context) ([]Result, error)
		CreateResult(ctx context.Context, draft Draft) (Result, error)
		UpdateResult(ctx context.Context, id core.ID, draft Draft) (Result, error)
		DeleteResult(ctx context.Context, id core.ID) error
	}

	// StudentDirectory provides the Students dependency snapshot for joins.
	StudentDirectory interface {
		QueryStudentEntries(ctx context.Context) ([]join.Entry, error)
	}

	EditSession struct {
		TargetID core.ID
		Draft    Draft
	}

	// Service is the Results view coordinator. On top of the common CRUD
	// state it carries two independent filter dimensions; the visible set
	// is their intersection.
	Service struct {
		repo     Repository
		students StudentDirectory
		log      core.Logger

		results        []Result
		studentEntries []join.Entry
		loading        bool
		saving         bool
		session        *EditSession
		notif          *core.Notification

		filterStudent core.ID
		filterSubject string
	}
)

func NewService(repo Repository, students StudentDirectory, logger core.Logger) *Service {
	return &Service{repo: repo, students: students, log: logger}
}

func (svc *Service) Results() []Result                 { return svc.results }
func (svc *Service) Students() []join.Entry            { return svc.studentEntries }
func (svc *Service) Loading() bool                     { return svc.loading }
func (svc *Service) Saving() bool                      { return svc.saving }
func (svc *Service) Session() *EditSession             { return svc.session }
func (svc *Service) Notification() *core.Notification { return svc.notif }
func (svc *Service) DismissNotification()              { svc.notif = nil }

// StudentLabel resolves a result's student against the Students snapshot.
func (svc *Service) StudentLabel(id core.ID) string {
	return join.StudentLabel(svc.studentEntries, id)
}

func (svc *Service) SetStudentFilter(id core.ID) { svc.filterStudent = id }
func (svc *Service) SetSubjectFilter(s string)   { svc.filterSubject = normalizeSubject(s) }

// Subjects derives the subject filter's options live: the distinct,
// non-empty subjects present in the current snapshot, in first-seen order.
func (svc *Service) Subjects() []string {
	seen := make(map[string]bool, len(svc.results))
	subjects := make([]string, 0, len(svc.results))
	for _, r := range svc.results {
		if r.Subject == "" || seen[r.Subject] {
			continue
		}
		seen[r.Subject] = true
		subjects = append(subjects, r.Subject)
	}
	return subjects
}

// Visible applies the AND-intersection of both filter dimensions; an unset
// dimension passes all rows.
func (svc *Service) Visible() []Result {
	visible := make([]Result, 0, len(svc.results))
	for _, r := range svc.results {
		if !svc.filterStudent.IsZero() && r.StudentID != svc.filterStudent {
			continue
		}
		if svc.filterSubject != "" && r.Subject != svc.filterSubject {
			continue
		}
		visible = append(visible, r)
	}
	return visible
}

func (svc *Service) fail(err error) {
	svc.log.Error("results: "+err.Error(), err)
	svc.notif = core.NewErrorNotification(err)
}

// Load fetches the Results collection and the Students dependency
// concurrently; on any failure the previous snapshots are kept and the
// error surfaces as a notification.
func (svc *Service) Load(ctx context.Context) {
	svc.loading = true
	defer func() { svc.loading = false }()

	var (
		results  []Result
		students []join.Entry
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		results, err = svc.repo.QueryAllResults(ctx)
		return
	})
	g.Go(func() (err error) {
		students, err = svc.students.QueryStudentEntries(ctx)
		return
	})
	if err := g.Wait(); err != nil {
		svc.fail(err)
		return
	}

	svc.results = results
	svc.studentEntries = students
}

func (svc *Service) OpenCreate() {
	svc.session = &EditSession{Draft: NewDraft()}
}

func (svc *Service) OpenEdit(id core.ID) {
	for _, r := range svc.results {
		if r.ID == id {
			svc.session = &EditSession{TargetID: id, Draft: DraftOf(r)}
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
		updated, err := svc.repo.UpdateResult(ctx, id, svc.session.Draft)
		if err != nil {
			svc.fail(err)
			return
		}
		for i, r := range svc.results {
			if r.ID == updated.ID {
				svc.results[i] = updated
				break
			}
		}
		svc.notif = core.NewSuccessNotification("Result updated.")
	} else {
		created, err := svc.repo.CreateResult(ctx, svc.session.Draft)
		if err != nil {
			svc.fail(err)
			return
		}
		svc.results = append([]Result{created}, svc.results...)
		svc.notif = core.NewSuccessNotification("Result created.")
	}
	svc.session = nil
}

func (svc *Service) RequestDelete(id core.ID) core.DeleteIntent {
	return core.DeleteIntent{ID: id, Message: "Delete this result?"}
}

func (svc *Service) ConfirmDelete(ctx context.Context, id core.ID) {
	if err := svc.repo.DeleteResult(ctx, id); err != nil {
		svc.fail(err)
		return
	}
	for i, r := range svc.results {
		if r.ID == id {
			svc.results = append(svc.results[:i], svc.results[i+1:]...)
			break
		}
	}
	svc.notif = core.NewSuccessNotification("Result deleted.")
}
