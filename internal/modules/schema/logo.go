package schema

import "github.com/vimco/vimco-api/internal/modules/model"

type LogoInput struct {
	Name         *string `json:"name" validate:"required,min=2,max=100"`
	LogoURL      *string `json:"logo_url" schema:"nullable" validate:"omitempty,uri"`
	TextLogo     *string `json:"text_logo" schema:"nullable" validate:"omitempty,min=1,max=200"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order" validate:"min=0"`
}

func (in *LogoInput) Sanitize() {}

func (in *LogoInput) Apply(m *model.Logo, present Fields) []string {
	c := newColumns(present)
	if c.has("name") {
		m.Name = *in.Name
	}
	if c.has("logo_url") {
		m.LogoURL = in.LogoURL
	}
	if c.has("text_logo") {
		m.TextLogo = in.TextLogo
	}
	if c.has("is_active") {
		m.IsActive = *in.IsActive
	}
	if c.has("display_order") {
		m.DisplayOrder = *in.DisplayOrder
	}
	return c.list
}
