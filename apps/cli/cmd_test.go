package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/matokeo/core/result"
	"github.com/trezcool/matokeo/core/section"
	"github.com/trezcool/matokeo/core/student"
	logsvc "github.com/trezcool/matokeo/services/logger"
	dummydb "github.com/trezcool/matokeo/storage/dummy"
)

func newTestCLI(t *testing.T) (*commandLine, *bytes.Buffer, *dummydb.DB) {
	t.Helper()
	db, err := dummydb.Open()
	require.NoError(t, err)

	logger := logsvc.NewConsoleLogger(log.New(io.Discard, "", 0))
	studentRepo := dummydb.NewStudentRepository(db)
	sectionRepo := dummydb.NewSectionRepository(db)
	resultRepo := dummydb.NewResultRepository(db)

	var out bytes.Buffer
	cli := &commandLine{
		students: student.NewService(studentRepo, sectionRepo, logger),
		sections: section.NewService(sectionRepo, studentRepo, logger),
		results:  result.NewService(resultRepo, studentRepo, logger),
		out:      &out,
	}
	return cli, &out, db
}

func mockReadLine(t *testing.T, answer string) {
	t.Helper()
	orig := readLineFunc
	readLineFunc = func() (string, error) { return answer, nil }
	t.Cleanup(func() { readLineFunc = orig })
}

func TestCommandLine_run(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		args     []string
		answer   string // confirmation input, when prompted
		wantErr  error
		wantOut  []string
		notWant  []string
		seed     func(t *testing.T, db *dummydb.DB)
		verify   func(t *testing.T, db *dummydb.DB)
	}{
		{
			name:    "no args prints usage",
			args:    []string{"matokeo"},
			wantErr: errHelp,
			wantOut: []string{"Usage:"},
		},
		{
			name:    "unknown entity prints usage",
			args:    []string{"matokeo", "teachers", "list"},
			wantErr: errHelp,
			wantOut: []string{"Usage:"},
		},
		{
			name:    "students list empty",
			args:    []string{"matokeo", "students", "list"},
			wantOut: []string{"No records found"},
		},
		{
			name: "students add",
			args: []string{"matokeo", "students", "add", "-name", "Ann", "-email", "ann@x.com"},
			wantOut: []string{"success: Student created."},
			verify: func(t *testing.T, db *dummydb.DB) {
				students, err := dummydb.NewStudentRepository(db).QueryAllStudents(ctx)
				require.NoError(t, err)
				require.Len(t, students, 1)
				assert.Equal(t, "Ann", students[0].Name)
			},
		},
		{
			name:    "students add missing email",
			args:    []string{"matokeo", "students", "add", "-name", "Ann"},
			wantOut: []string{"error:", "email"},
			verify: func(t *testing.T, db *dummydb.DB) {
				students, err := dummydb.NewStudentRepository(db).QueryAllStudents(ctx)
				require.NoError(t, err)
				assert.Empty(t, students)
			},
		},
		{
			name: "students edit changes only provided flags",
			seed: func(t *testing.T, db *dummydb.DB) {
				_, err := dummydb.NewStudentRepository(db).CreateStudent(ctx, student.Draft{Name: "Ann", Email: "ann@x.com", EnrollmentDate: "2021-01-01"})
				require.NoError(t, err)
			},
			args:    []string{"matokeo", "students", "edit", "-id", "1", "-name", "Ann K"},
			wantOut: []string{"success: Student updated."},
			verify: func(t *testing.T, db *dummydb.DB) {
				students, err := dummydb.NewStudentRepository(db).QueryAllStudents(ctx)
				require.NoError(t, err)
				require.Len(t, students, 1)
				assert.Equal(t, "Ann K", students[0].Name)
				assert.Equal(t, "ann@x.com", students[0].Email)
				assert.Equal(t, "2021-01-01", students[0].EnrollmentDate)
			},
		},
		{
			name:    "students edit unknown id",
			args:    []string{"matokeo", "students", "edit", "-id", "99", "-name", "x"},
			wantOut: []string{"error: student not found"},
		},
		{
			name:    "students edit requires id",
			args:    []string{"matokeo", "students", "edit", "-name", "x"},
			wantErr: errHelp,
		},
		{
			name: "students rm confirmed",
			seed: func(t *testing.T, db *dummydb.DB) {
				_, err := dummydb.NewStudentRepository(db).CreateStudent(ctx, student.Draft{Name: "Ann", Email: "ann@x.com"})
				require.NoError(t, err)
			},
			args:    []string{"matokeo", "students", "rm", "-id", "1"},
			answer:  "Y\n",
			wantOut: []string{"Delete this student? [y/N]: ", "success: Student deleted."},
			verify: func(t *testing.T, db *dummydb.DB) {
				students, err := dummydb.NewStudentRepository(db).QueryAllStudents(ctx)
				require.NoError(t, err)
				assert.Empty(t, students)
			},
		},
		{
			name: "students rm aborted",
			seed: func(t *testing.T, db *dummydb.DB) {
				_, err := dummydb.NewStudentRepository(db).CreateStudent(ctx, student.Draft{Name: "Ann", Email: "ann@x.com"})
				require.NoError(t, err)
			},
			args:    []string{"matokeo", "students", "rm", "-id", "1"},
			answer:  "n\n",
			wantOut: []string{"Aborted."},
			notWant: []string{"Student deleted."},
			verify: func(t *testing.T, db *dummydb.DB) {
				students, err := dummydb.NewStudentRepository(db).QueryAllStudents(ctx)
				require.NoError(t, err)
				assert.Len(t, students, 1)
			},
		},
		{
			name: "sections rm prompt warns about students",
			seed: func(t *testing.T, db *dummydb.DB) {
				_, err := dummydb.NewSectionRepository(db).CreateSection(ctx, section.Draft{Name: "Blue"})
				require.NoError(t, err)
			},
			args:    []string{"matokeo", "sections", "rm", "-id", "1"},
			answer:  "y\n",
			wantOut: []string{"Delete this section? Students will lose this section assignment.", "success: Section deleted."},
		},
		{
			name: "students list shows section label",
			seed: func(t *testing.T, db *dummydb.DB) {
				sec, err := dummydb.NewSectionRepository(db).CreateSection(ctx, section.Draft{Name: "Blue"})
				require.NoError(t, err)
				_, err = dummydb.NewStudentRepository(db).CreateStudent(ctx, student.Draft{Name: "Ann", Email: "ann@x.com", SectionID: sec.ID})
				require.NoError(t, err)
				_, err = dummydb.NewStudentRepository(db).CreateStudent(ctx, student.Draft{Name: "Bob", Email: "bob@x.com"})
				require.NoError(t, err)
			},
			args:    []string{"matokeo", "students", "list"},
			wantOut: []string{"Ann", "Blue", "unassigned"},
		},
		{
			name: "results add and list with grade",
			seed: func(t *testing.T, db *dummydb.DB) {
				_, err := dummydb.NewStudentRepository(db).CreateStudent(ctx, student.Draft{Name: "Ann", Email: "ann@x.com"})
				require.NoError(t, err)
				d := result.Draft{StudentID: "1", Subject: "Maths", Marks: "85", ExamDate: "2021-06-01"}
				require.NoError(t, d.Validate())
				_, err = dummydb.NewResultRepository(db).CreateResult(ctx, d)
				require.NoError(t, err)
			},
			args:    []string{"matokeo", "results", "list"},
			wantOut: []string{"Maths", "85", "A", "Ann"},
		},
		{
			name:    "results add rejects bad marks",
			args:    []string{"matokeo", "results", "add", "-student", "1", "-subject", "Maths", "-marks", "abc", "-date", "2021-06-01"},
			wantOut: []string{"error:", "must be a number between 0 and 100"},
		},
		{
			name: "results list filtered by subject",
			seed: func(t *testing.T, db *dummydb.DB) {
				_, err := dummydb.NewStudentRepository(db).CreateStudent(ctx, student.Draft{Name: "Ann", Email: "ann@x.com"})
				require.NoError(t, err)
				repo := dummydb.NewResultRepository(db)
				for _, row := range []struct{ subject, marks, date string }{
					{"Maths", "85", "2021-06-01"},
					{"Physics", "42", "2021-06-02"},
				} {
					d := result.Draft{StudentID: "1", Subject: row.subject, Marks: row.marks, ExamDate: row.date}
					require.NoError(t, d.Validate())
					_, err := repo.CreateResult(ctx, d)
					require.NoError(t, err)
				}
			},
			args:    []string{"matokeo", "results", "list", "-subject", "Physics"},
			wantOut: []string{"Physics", "F"},
			notWant: []string{"Maths"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out, db := newTestCLI(t)
			if tt.seed != nil {
				tt.seed(t, db)
			}
			if tt.answer != "" {
				mockReadLine(t, tt.answer)
			}

			err := cli.run(tt.args)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}

			got := out.String()
			for _, want := range tt.wantOut {
				assert.True(t, strings.Contains(got, want), "output missing %q:\n%s", want, got)
			}
			for _, notWant := range tt.notWant {
				assert.False(t, strings.Contains(got, notWant), "output should not contain %q:\n%s", notWant, got)
			}
			if tt.verify != nil {
				tt.verify(t, db)
			}
		})
	}
}
