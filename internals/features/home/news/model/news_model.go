package model

import "time"

type NewsModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Excerpt   string    `gorm:"type:text" json:"excerpt"`
	Content   string    `gorm:"type:text" json:"content"`
	Date      string    `gorm:"type:varchar(50)" json:"date"` // tanggal tampilan, mis. "15 Januari 2025"
	Author    string    `gorm:"type:varchar(100)" json:"author"`
	Category  string    `gorm:"type:varchar(50)" json:"category"`
	Image     string    `gorm:"type:text" json:"image"` // URL atau data URI base64
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (NewsModel) TableName() string {
	return "news"
}
