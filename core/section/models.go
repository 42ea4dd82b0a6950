package section

import "github.com/trezcool/matokeo/core"

type Section struct {
	ID          core.ID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"` // optional
}

// Draft holds the edit-session form values for a Section.
type Draft struct {
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description"`
}

func NewDraft() Draft {
	return Draft{}
}

func DraftOf(s Section) Draft {
	return Draft{Name: s.Name, Description: s.Description}
}

func (d *Draft) Validate() error {
	d.Name = core.CleanString(d.Name)
	d.Description = core.CleanString(d.Description)
	return core.Validate.Struct(d)
}
