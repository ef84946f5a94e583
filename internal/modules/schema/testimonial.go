package schema

import "github.com/vimco/vimco-api/internal/modules/model"

type TestimonialInput struct {
	Name         *string `json:"name" validate:"required,min=2,max=100"`
	Role         *string `json:"role" validate:"required,min=2,max=150"`
	Content      *string `json:"content" validate:"required,min=5"`
	Rating       *int    `json:"rating" validate:"required,min=1,max=5"`
	ImageURL     *string `json:"image_url" schema:"nullable" validate:"omitempty,uri"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order" validate:"min=0"`
}

func (in *TestimonialInput) Sanitize() {}

func (in *TestimonialInput) Apply(m *model.Testimonial, present Fields) []string {
	c := newColumns(present)
	if c.has("name") {
		m.Name = *in.Name
	}
	if c.has("role") {
		m.Role = *in.Role
	}
	if c.has("content") {
		m.Content = *in.Content
	}
	if c.has("rating") {
		m.Rating = *in.Rating
	}
	if c.has("image_url") {
		m.ImageURL = in.ImageURL
	}
	if c.has("is_active") {
		m.IsActive = *in.IsActive
	}
	if c.has("display_order") {
		m.DisplayOrder = *in.DisplayOrder
	}
	return c.list
}
