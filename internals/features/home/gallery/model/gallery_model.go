package model

import "time"

type GalleryModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Image     string    `gorm:"type:text;not null" json:"image"` // URL atau data URI base64
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Category  string    `gorm:"type:varchar(50);not null" json:"category"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (GalleryModel) TableName() string {
	return "gallery"
}

// Kategori galeri yang dikenal frontend.
var GalleryCategories = []string{"pembelajaran", "seni", "bermain", "olahraga", "outing"}

func IsValidCategory(category string) bool {
	for _, c := range GalleryCategories {
		if c == category {
			return true
		}
	}
	return false
}
