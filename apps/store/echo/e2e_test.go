package storeapi_test

import (
	"context"
	"io"
	"log"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/result"
	"github.com/trezcool/matokeo/core/section"
	"github.com/trezcool/matokeo/core/student"
	logsvc "github.com/trezcool/matokeo/services/logger"
	"github.com/trezcool/matokeo/storage/store"

	storeapi "github.com/trezcool/matokeo/apps/store/echo"
)

// Exercises the full stack: coordinators, the HTTP repositories and the
// bundled record store wired together, the way the app actually runs.
func TestEndToEnd(t *testing.T) {
	logger := logsvc.NewConsoleLogger(log.New(io.Discard, "", 0))
	api := storeapi.NewServer(&storeapi.Options{DisableReqLogs: true, Logger: logger})
	srv := httptest.NewServer(api)
	defer srv.Close()

	client := store.NewClient(&core.Config{Store: core.StoreConfig{URL: srv.URL, Timeout: 5 * time.Second}})
	students := store.NewStudentRepository(client)
	sections := store.NewSectionRepository(client)
	results := store.NewResultRepository(client)

	studentSvc := student.NewService(students, sections, logger)
	sectionSvc := section.NewService(sections, students, logger)
	resultSvc := result.NewService(results, students, logger)

	ctx := context.Background()

	// a section to assign students to
	sectionSvc.OpenCreate()
	sectionSvc.Session().Draft.Name = "Blue"
	sectionSvc.Save(ctx)
	require.Equal(t, core.NotifSuccess, sectionSvc.Notification().Kind, sectionSvc.Notification().Message)
	require.Len(t, sectionSvc.Sections(), 1)
	blue := sectionSvc.Sections()[0]

	// create a student in that section
	studentSvc.Load(ctx)
	studentSvc.OpenCreate()
	draft := &studentSvc.Session().Draft
	draft.Name = "Ann"
	draft.Email = "ann@x.com"
	draft.SectionID = blue.ID
	studentSvc.Save(ctx)
	require.Equal(t, "Student created.", studentSvc.Notification().Message)
	require.Len(t, studentSvc.Students(), 1)
	ann := studentSvc.Students()[0]
	assert.False(t, ann.ID.IsZero(), "the store assigns the id")

	// the section label resolves through the loaded directory
	studentSvc.Load(ctx)
	assert.Equal(t, "Blue", studentSvc.SectionLabel(studentSvc.Students()[0].SectionID))

	// the section side sees the assignment
	sectionSvc.Load(ctx)
	assert.Equal(t, 1, sectionSvc.StudentCount(blue.ID))

	// record a result for the student
	resultSvc.Load(ctx)
	resultSvc.OpenCreate()
	rd := &resultSvc.Session().Draft
	rd.StudentID = ann.ID
	rd.Subject = "Maths"
	rd.Marks = "85"
	rd.ExamDate = "2021-06-01"
	resultSvc.Save(ctx)
	require.Equal(t, "Result created.", resultSvc.Notification().Message)
	require.Len(t, resultSvc.Visible(), 1)
	created := resultSvc.Visible()[0]
	assert.Equal(t, 85.0, created.Marks)
	assert.Equal(t, "Ann", resultSvc.StudentLabel(created.StudentID))
	assert.Equal(t, "A", result.Classify(created.Marks).Letter)

	// edit round trip: the persisted marks come back, not the form string
	resultSvc.OpenEdit(created.ID)
	require.NotNil(t, resultSvc.Session())
	assert.Equal(t, "85", resultSvc.Session().Draft.Marks)
	resultSvc.Session().Draft.Marks = "92.5"
	resultSvc.Save(ctx)
	require.Equal(t, "Result updated.", resultSvc.Notification().Message)
	assert.Equal(t, 92.5, resultSvc.Visible()[0].Marks)
	assert.Equal(t, "A+", result.Classify(resultSvc.Visible()[0].Marks).Letter)

	// deleting the section leaves the student with a dangling assignment
	intent := sectionSvc.RequestDelete(blue.ID)
	sectionSvc.ConfirmDelete(ctx, intent.ID)
	require.Equal(t, "Section deleted.", sectionSvc.Notification().Message)
	studentSvc.Load(ctx)
	assert.Equal(t, "unassigned", studentSvc.SectionLabel(studentSvc.Students()[0].SectionID))

	// delete the rest
	resultSvc.ConfirmDelete(ctx, created.ID)
	require.Equal(t, "Result deleted.", resultSvc.Notification().Message)
	assert.Empty(t, resultSvc.Visible())

	studentSvc.ConfirmDelete(ctx, ann.ID)
	require.Equal(t, "Student deleted.", studentSvc.Notification().Message)
	assert.Empty(t, studentSvc.Students())

	// a second delete of the same record surfaces the store's error body
	studentSvc.ConfirmDelete(ctx, ann.ID)
	require.NotNil(t, studentSvc.Notification())
	assert.Equal(t, core.NotifError, studentSvc.Notification().Kind)
	assert.Equal(t, "record not found", studentSvc.Notification().Message)
}
