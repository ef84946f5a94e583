package model

const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusConverted = "converted"
	LeadStatusClosed    = "closed"
)

// ContactSubmission is a lead captured by the public contact and quote forms.
type ContactSubmission struct {
	Record
	Name    string  `gorm:"type:varchar(100);not null" json:"name"`
	Email   string  `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone   *string `gorm:"type:varchar(20)" json:"phone"`
	Message string  `gorm:"type:text;not null" json:"message"`
	Status  string  `gorm:"type:varchar(20);not null;index" json:"status"`
}

func (ContactSubmission) TableName() string { return "contact_submissions" }

func NewContactSubmission() *ContactSubmission {
	return &ContactSubmission{Status: LeadStatusNew}
}
