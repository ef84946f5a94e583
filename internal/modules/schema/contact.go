package schema

import "github.com/vimco/vimco-api/internal/modules/model"

type ContactInput struct {
	Name    *string `json:"name" validate:"required,min=2,max=100"`
	Email   *string `json:"email" validate:"required,email,max=255"`
	Phone   *string `json:"phone" schema:"nullable" validate:"omitempty,max=20"`
	Message *string `json:"message" validate:"required,min=1,max=1000"`
	Status  *string `json:"status" validate:"oneof=new contacted converted closed"`
}

func (in *ContactInput) Sanitize() {
	trim(in.Name)
	trim(in.Email)
	trim(in.Phone)
	trim(in.Message)
}

func (in *ContactInput) Apply(m *model.ContactSubmission, present Fields) []string {
	return applyContact(m, newColumns(present), contactValues(*in))
}

// ContactPatch is used by the back office to edit a lead or move it through
// the status workflow.
type ContactPatch struct {
	Name    *string `json:"name" validate:"min=2,max=100"`
	Email   *string `json:"email" validate:"email,max=255"`
	Phone   *string `json:"phone" schema:"nullable" validate:"omitempty,max=20"`
	Message *string `json:"message" validate:"min=1,max=1000"`
	Status  *string `json:"status" validate:"oneof=new contacted converted closed"`
}

func (in *ContactPatch) Sanitize() {
	trim(in.Name)
	trim(in.Email)
	trim(in.Phone)
	trim(in.Message)
}

func (in *ContactPatch) Apply(m *model.ContactSubmission, present Fields) []string {
	return applyContact(m, newColumns(present), contactValues(*in))
}

type contactValues struct {
	Name    *string
	Email   *string
	Phone   *string
	Message *string
	Status  *string
}

func applyContact(m *model.ContactSubmission, c *columns, v contactValues) []string {
	if c.has("name") {
		m.Name = *v.Name
	}
	if c.has("email") {
		m.Email = *v.Email
	}
	if c.has("phone") {
		m.Phone = v.Phone
	}
	if c.has("message") {
		m.Message = *v.Message
	}
	if c.has("status") {
		m.Status = *v.Status
	}
	return c.list
}
