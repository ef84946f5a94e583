package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ProjectTypeResidential = "residential"
	ProjectTypeCommercial  = "commercial"
	ProjectTypeIndustrial  = "industrial"
)

// Project is a completed solar installation. CompletedDate is nullable because
// bulk-imported rows are stored without validation.
type Project struct {
	Record
	Title         string                      `gorm:"type:text" json:"title"`
	Location      string                      `gorm:"type:text" json:"location"`
	Capacity      string                      `gorm:"type:text" json:"capacity"`
	CompletedDate *time.Time                  `json:"completed_date"`
	Description   string                      `gorm:"type:text" json:"description"`
	ClientName    string                      `gorm:"type:text" json:"client_name"`
	ProjectType   string                      `gorm:"type:text;not null" json:"project_type"`
	Images        datatypes.JSONSlice[string] `gorm:"type:jsonb" swaggertype:"array,string" json:"images"`
}

func (Project) TableName() string { return "projects" }

func NewProject() *Project {
	return &Project{
		ProjectType: ProjectTypeResidential,
		Images:      datatypes.JSONSlice[string]{},
	}
}
