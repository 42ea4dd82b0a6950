package result

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core"
)

type Result struct {
	ID        core.ID `json:"id"`
	StudentID core.ID `json:"studentId"`
	Subject   string  `json:"subject"`
	Marks     float64 `json:"marks"` // 0 - 100 inclusive
	ExamDate  string  `json:"examDate"` // optional; YYYY-MM-DD
}

// Draft holds the edit-session form values for a Result. Marks is kept as
// the raw form string so that non-numeric input is rejected locally,
// before any network call.
type Draft struct {
	StudentID core.ID `json:"studentId" validate:"notblank"`
	Subject   string  `json:"subject" validate:"notblank"`
	Marks     string  `json:"marks" validate:"notblank"`
	ExamDate  string  `json:"examDate"`

	marks float64 // set by Validate
}

func NewDraft() Draft {
	return Draft{}
}

func DraftOf(r Result) Draft {
	return Draft{
		StudentID: r.StudentID,
		Subject:   r.Subject,
		Marks:     strconv.FormatFloat(r.Marks, 'f', -1, 64),
		ExamDate:  r.ExamDate,
		marks:     r.Marks,
	}
}

func (d *Draft) Validate() error {
	d.Subject = core.CleanString(d.Subject)
	d.Marks = core.CleanString(d.Marks)
	if err := core.Validate.Struct(d); err != nil {
		return err
	}

	marks, err := strconv.ParseFloat(d.Marks, 64)
	if err != nil || marks < 0 || marks > 100 {
		return core.NewValidationError(
			errors.New("invalid marks"),
			core.FieldError{Field: "marks", Error: "must be a number between 0 and 100"},
		)
	}
	d.marks = marks
	return nil
}

// MarksValue returns the numeric marks parsed by Validate.
func (d Draft) MarksValue() float64 {
	return d.marks
}

// normalizeSubject is used for the subject filter's equality matching.
func normalizeSubject(s string) string {
	return strings.TrimSpace(s)
}
