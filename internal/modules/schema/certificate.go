package schema

import "github.com/vimco/vimco-api/internal/modules/model"

type CertificateInput struct {
	Title        *string `json:"title" validate:"required,min=3,max=200"`
	Description  *string `json:"description" validate:"required,min=5"`
	ImageURL     *string `json:"image_url" schema:"nullable" validate:"omitempty,uri"`
	IsFeatured   *bool   `json:"is_featured"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order" validate:"min=0"`
}

func (in *CertificateInput) Sanitize() {}

func (in *CertificateInput) Apply(m *model.Certificate, present Fields) []string {
	c := newColumns(present)
	if c.has("title") {
		m.Title = *in.Title
	}
	if c.has("description") {
		m.Description = *in.Description
	}
	if c.has("image_url") {
		m.ImageURL = in.ImageURL
	}
	if c.has("is_featured") {
		m.IsFeatured = *in.IsFeatured
	}
	if c.has("is_active") {
		m.IsActive = *in.IsActive
	}
	if c.has("display_order") {
		m.DisplayOrder = *in.DisplayOrder
	}
	return c.list
}
