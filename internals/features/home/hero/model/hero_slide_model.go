package model

import "time"

type HeroSlideModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Subtitle    string    `gorm:"type:varchar(255)" json:"subtitle"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"type:text" json:"image"` // URL atau data URI base64
	Color       string    `gorm:"type:varchar(20)" json:"color"`
	Position    int       `gorm:"not null;default:0" json:"position"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for HeroSlideModel
func (HeroSlideModel) TableName() string {
	return "hero_slides"
}
