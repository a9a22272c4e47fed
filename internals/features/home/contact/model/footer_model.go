package model

import "time"

// FooterModel adalah baris tunggal (id=1) berisi konten footer situs.
type FooterModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"type:text" json:"description"`
	Address     string    `gorm:"type:text" json:"address"`
	Phone       string    `gorm:"type:varchar(50)" json:"phone"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	Facebook    string    `gorm:"type:text" json:"facebook"`
	Instagram   string    `gorm:"type:text" json:"instagram"`
	Tiktok      string    `gorm:"type:text" json:"tiktok"`
	Whatsapp    string    `gorm:"type:text" json:"whatsapp"`
	Copyright   string    `gorm:"type:varchar(255)" json:"copyright"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FooterModel) TableName() string {
	return "footer"
}
