package model

type Certificate struct {
	Record
	Title        string  `gorm:"type:varchar(200);not null" json:"title"`
	Description  string  `gorm:"type:text;not null" json:"description"`
	ImageURL     *string `gorm:"type:text" json:"image_url"`
	IsFeatured   bool    `gorm:"not null" json:"is_featured"`
	IsActive     bool    `gorm:"not null" json:"is_active"`
	DisplayOrder int     `gorm:"not null;index" json:"display_order"`
}

func (Certificate) TableName() string { return "certificates" }

func NewCertificate() *Certificate {
	return &Certificate{IsActive: true}
}
