package section_test

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/join"
	"github.com/trezcool/matokeo/core/section"
	"github.com/trezcool/matokeo/core/student"
	logsvc "github.com/trezcool/matokeo/services/logger"
	dummydb "github.com/trezcool/matokeo/storage/dummy"
)

var logger = logsvc.NewConsoleLogger(log.New(io.Discard, "", 0))

type countingRepo struct {
	calls int
}

func (r *countingRepo) QueryAllSections(ctx context.Context) ([]section.Section, error) {
	r.calls++
	return nil, errors.New("store down")
}
func (r *countingRepo) CreateSection(ctx context.Context, d section.Draft) (section.Section, error) {
	r.calls++
	return section.Section{}, errors.New("store down")
}
func (r *countingRepo) UpdateSection(ctx context.Context, id core.ID, d section.Draft) (section.Section, error) {
	r.calls++
	return section.Section{}, errors.New("store down")
}
func (r *countingRepo) DeleteSection(ctx context.Context, id core.ID) error {
	r.calls++
	return errors.New("store down")
}

type stubStudents struct {
	refs []join.StudentRef
	err  error
}

func (s *stubStudents) QueryStudentRefs(ctx context.Context) ([]join.StudentRef, error) {
	return s.refs, s.err
}

func setup(t *testing.T) (*section.Service, *dummydb.DB) {
	db, err := dummydb.Open()
	require.NoError(t, err)
	svc := section.NewService(dummydb.NewSectionRepository(db), dummydb.NewStudentRepository(db), logger)
	return svc, db
}

func createSection(t *testing.T, svc *section.Service, name, desc string) section.Section {
	t.Helper()
	svc.OpenCreate()
	draft := &svc.Session().Draft
	draft.Name = name
	draft.Description = desc
	svc.Save(context.Background())
	require.Nil(t, svc.Session(), "save should close the session")
	require.NotEmpty(t, svc.Sections())
	return svc.Sections()[0]
}

func TestService_Save_requiredFields(t *testing.T) {
	repo := &countingRepo{}
	svc := section.NewService(repo, &stubStudents{}, logger)

	svc.OpenCreate()
	svc.Session().Draft.Name = "   "
	svc.Save(context.Background())

	notif := svc.Notification()
	require.NotNil(t, notif)
	assert.Equal(t, core.NotifError, notif.Kind)
	assert.Contains(t, notif.Message, "name")
	assert.Equal(t, 0, repo.calls, "validation failure must not reach the store")
	assert.NotNil(t, svc.Session(), "session stays open on failure")
}

func TestService_CreateEditDelete(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	blue := createSection(t, svc, "Blue", "morning group")
	assert.Equal(t, "Section created.", svc.Notification().Message)

	green := createSection(t, svc, "Green", "")
	require.Len(t, svc.Sections(), 2)
	assert.Equal(t, green.ID, svc.Sections()[0].ID, "created entity is prepended")

	svc.OpenEdit(blue.ID)
	session := svc.Session()
	require.NotNil(t, session)
	assert.Equal(t, "morning group", session.Draft.Description)
	session.Draft.Name = "Navy"
	svc.Save(ctx)
	assert.Equal(t, "Navy", svc.Sections()[1].Name)
	assert.Equal(t, "Section updated.", svc.Notification().Message)

	svc.ConfirmDelete(ctx, blue.ID)
	require.Len(t, svc.Sections(), 1)
	assert.Equal(t, "Section deleted.", svc.Notification().Message)

	svc.ConfirmDelete(ctx, "999")
	assert.Len(t, svc.Sections(), 1)
	assert.Equal(t, core.NotifError, svc.Notification().Kind)
}

// Counts are recomputed from the live Students snapshot, never cached.
func TestService_StudentCount(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()

	sec := createSection(t, svc, "Blue", "")

	students := dummydb.NewStudentRepository(db)
	for _, name := range []string{"Ann", "Bob"} {
		_, err := students.CreateStudent(ctx, student.Draft{Name: name, Email: name + "@x.com", SectionID: sec.ID})
		require.NoError(t, err)
	}
	_, err := students.CreateStudent(ctx, student.Draft{Name: "Eve", Email: "eve@x.com"})
	require.NoError(t, err)

	svc.Load(ctx)
	assert.Equal(t, 2, svc.StudentCount(sec.ID))
	assert.Equal(t, 0, svc.StudentCount("999"))

	// deleting a section does not touch its students; the count simply
	// reflects whatever the Students snapshot says after the next load
	svc.ConfirmDelete(ctx, sec.ID)
	svc.Load(ctx)
	assert.Equal(t, 2, svc.StudentCount(sec.ID), "students keep their dangling assignment")
}

func TestService_RequestDelete_warnsAboutStudents(t *testing.T) {
	svc, _ := setup(t)

	intent := svc.RequestDelete("1")
	assert.Equal(t, core.ID("1"), intent.ID)
	// must warn that students lose the assignment, not that they are deleted
	assert.Equal(t, "Delete this section? Students will lose this section assignment.", intent.Message)
	assert.NotContains(t, intent.Message, "deleted")
}

func TestService_Load_failure(t *testing.T) {
	svc := section.NewService(&countingRepo{}, &stubStudents{}, logger)
	svc.Load(context.Background())
	require.NotNil(t, svc.Notification())
	assert.Equal(t, core.NotifError, svc.Notification().Kind)
	assert.Empty(t, svc.Sections())

	db, _ := dummydb.Open()
	svc2 := section.NewService(dummydb.NewSectionRepository(db), &stubStudents{err: errors.New("boom")}, logger)
	svc2.Load(context.Background())
	require.NotNil(t, svc2.Notification())
	assert.Equal(t, core.NotifError, svc2.Notification().Kind)
}
