package model

import "time"

type Event struct {
	Record
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Author       *string   `gorm:"type:varchar(100)" json:"author"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	ImageURL     *string   `gorm:"type:text" json:"image_url"`
	EventDate    time.Time `gorm:"not null" json:"event_date"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	DisplayOrder int       `gorm:"not null;index" json:"display_order"`
}

func (Event) TableName() string { return "events" }

func NewEvent() *Event {
	return &Event{IsActive: true}
}
