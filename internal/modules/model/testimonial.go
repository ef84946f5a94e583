package model

type Testimonial struct {
	Record
	Name         string  `gorm:"type:varchar(100);not null" json:"name"`
	Role         string  `gorm:"type:varchar(150);not null" json:"role"`
	Content      string  `gorm:"type:text;not null" json:"content"`
	Rating       int     `gorm:"not null" json:"rating"`
	ImageURL     *string `gorm:"type:text" json:"image_url"`
	IsActive     bool    `gorm:"not null" json:"is_active"`
	DisplayOrder int     `gorm:"not null;index" json:"display_order"`
}

func (Testimonial) TableName() string { return "testimonials" }

func NewTestimonial() *Testimonial {
	return &Testimonial{Rating: 5, IsActive: true}
}
