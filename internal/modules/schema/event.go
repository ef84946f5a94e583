package schema

import "github.com/vimco/vimco-api/internal/modules/model"

type EventInput struct {
	Title        *string `json:"title" validate:"required,min=3,max=200"`
	Author       *string `json:"author" schema:"nullable" validate:"omitempty,min=2,max=100"`
	Description  *string `json:"description" validate:"required,min=5"`
	ImageURL     *string `json:"image_url" schema:"nullable" validate:"omitempty,uri"`
	EventDate    *Date   `json:"event_date" validate:"required"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order" validate:"min=0"`
}

func (in *EventInput) Sanitize() {}

func (in *EventInput) Apply(m *model.Event, present Fields) []string {
	c := newColumns(present)
	if c.has("title") {
		m.Title = *in.Title
	}
	if c.has("author") {
		m.Author = in.Author
	}
	if c.has("description") {
		m.Description = *in.Description
	}
	if c.has("image_url") {
		m.ImageURL = in.ImageURL
	}
	if c.has("event_date") {
		m.EventDate = in.EventDate.Time
	}
	if c.has("is_active") {
		m.IsActive = *in.IsActive
	}
	if c.has("display_order") {
		m.DisplayOrder = *in.DisplayOrder
	}
	return c.list
}
