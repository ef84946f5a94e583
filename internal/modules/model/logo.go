package model

// Logo is a client logo shown in the landing page marquee; either LogoURL or TextLogo is rendered.
type Logo struct {
	Record
	Name         string  `gorm:"type:varchar(100);not null" json:"name"`
	LogoURL      *string `gorm:"type:text" json:"logo_url"`
	TextLogo     *string `gorm:"type:varchar(200)" json:"text_logo"`
	IsActive     bool    `gorm:"not null" json:"is_active"`
	DisplayOrder int     `gorm:"not null;index" json:"display_order"`
}

func (Logo) TableName() string { return "logos" }

func NewLogo() *Logo {
	return &Logo{IsActive: true}
}
