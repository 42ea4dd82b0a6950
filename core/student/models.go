package student

import "github.com/trezcool/matokeo/core"

type Student struct {
	ID             core.ID `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	SectionID      core.ID `json:"sectionId"`      // optional; zero means unassigned
	EnrollmentDate string  `json:"enrollmentDate"` // optional; YYYY-MM-DD
}

// Draft holds the edit-session form values for a Student.
type Draft struct {
	Name           string  `json:"name" validate:"notblank"`
	Email          string  `json:"email" validate:"notblank"`
	SectionID      core.ID `json:"sectionId"`
	EnrollmentDate string  `json:"enrollmentDate"`
}

// NewDraft returns an empty draft for the create flow.
func NewDraft() Draft {
	return Draft{}
}

// DraftOf seeds a draft from an existing Student for the edit flow.
func DraftOf(s Student) Draft {
	return Draft{
		Name:           s.Name,
		Email:          s.Email,
		SectionID:      s.SectionID,
		EnrollmentDate: s.EnrollmentDate,
	}
}

func (d *Draft) Validate() error {
	d.Name = core.CleanString(d.Name)
	d.Email = core.CleanString(d.Email, true /* lower */)
	return core.Validate.Struct(d)
}
