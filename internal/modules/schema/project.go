package schema

import (
	"github.com/vimco/vimco-api/internal/modules/model"
	"gorm.io/datatypes"
)

// ProjectInput is the create schema: every descriptive field is required.
type ProjectInput struct {
	Title         *string   `json:"title" validate:"required,min=2,max=200"`
	Location      *string   `json:"location" validate:"required"`
	Capacity      *string   `json:"capacity" validate:"required"`
	CompletedDate *Date     `json:"completed_date" validate:"required"`
	Description   *string   `json:"description" validate:"required,min=5"`
	ClientName    *string   `json:"client_name" validate:"required"`
	ProjectType   *string   `json:"project_type" validate:"oneof=residential commercial industrial"`
	Images        *[]string `json:"images" validate:"dive,uri"`
}

func (in *ProjectInput) Sanitize() {
	trim(in.Title)
	trim(in.Location)
	trim(in.ClientName)
}

func (in *ProjectInput) Apply(m *model.Project, present Fields) []string {
	return applyProject(m, newColumns(present), projectValues(*in))
}

// ProjectPatch is the update schema: any subset of fields may be sent.
type ProjectPatch struct {
	Title         *string   `json:"title" validate:"min=2,max=200"`
	Location      *string   `json:"location"`
	Capacity      *string   `json:"capacity"`
	CompletedDate *Date     `json:"completed_date" schema:"nullable"`
	Description   *string   `json:"description" validate:"min=5"`
	ClientName    *string   `json:"client_name"`
	ProjectType   *string   `json:"project_type" validate:"oneof=residential commercial industrial"`
	Images        *[]string `json:"images" validate:"dive,uri"`
}

func (in *ProjectPatch) Sanitize() {
	trim(in.Title)
	trim(in.Location)
	trim(in.ClientName)
}

func (in *ProjectPatch) Apply(m *model.Project, present Fields) []string {
	return applyProject(m, newColumns(present), projectValues(*in))
}

type projectValues struct {
	Title         *string
	Location      *string
	Capacity      *string
	CompletedDate *Date
	Description   *string
	ClientName    *string
	ProjectType   *string
	Images        *[]string
}

func applyProject(m *model.Project, c *columns, v projectValues) []string {
	if c.has("title") {
		m.Title = *v.Title
	}
	if c.has("location") {
		m.Location = *v.Location
	}
	if c.has("capacity") {
		m.Capacity = *v.Capacity
	}
	if c.has("completed_date") {
		m.CompletedDate = nil
		if v.CompletedDate != nil {
			t := v.CompletedDate.Time
			m.CompletedDate = &t
		}
	}
	if c.has("description") {
		m.Description = *v.Description
	}
	if c.has("client_name") {
		m.ClientName = *v.ClientName
	}
	if c.has("project_type") {
		m.ProjectType = *v.ProjectType
	}
	if c.has("images") {
		m.Images = datatypes.JSONSlice[string](*v.Images)
	}
	return c.list
}

// ProjectRow is one pre-parsed spreadsheet row from a bulk import. Rows are
// not validated; cells may arrive as numbers where text is expected.
type ProjectRow struct {
	Title         Text      `json:"title"`
	Location      Text      `json:"location"`
	Capacity      Text      `json:"capacity"`
	CompletedDate Text      `json:"completed_date"`
	Description   Text      `json:"description"`
	ClientName    Text      `json:"client_name"`
	ProjectType   Text      `json:"project_type"`
	Images        ImageList `json:"images"`
}

// Model converts the row as-is. Unparseable dates are stored as null and a
// blank project type falls back to the model default.
func (r ProjectRow) Model() *model.Project {
	m := model.NewProject()
	m.Title = string(r.Title)
	m.Location = string(r.Location)
	m.Capacity = string(r.Capacity)
	m.Description = string(r.Description)
	m.ClientName = string(r.ClientName)
	if r.ProjectType != "" {
		m.ProjectType = string(r.ProjectType)
	}
	if r.CompletedDate != "" {
		if t, err := ParseDate(string(r.CompletedDate)); err == nil {
			m.CompletedDate = &t
		}
	}
	if len(r.Images) > 0 {
		m.Images = datatypes.JSONSlice[string](r.Images)
	}
	return m
}

// ImportRequest is the bulk-upload body.
type ImportRequest struct {
	Projects []ProjectRow `json:"projects"`
}
