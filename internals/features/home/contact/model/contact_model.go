package model

import (
	"time"

	"gorm.io/datatypes"
)

// ContactModel adalah baris tunggal (id=1) berisi info kontak sekolah.
type ContactModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Address   string         `gorm:"type:text" json:"address"`
	Phone     string         `gorm:"type:varchar(50)" json:"phone"`
	Whatsapp  string         `gorm:"type:text" json:"whatsapp"` // URL wa.me lengkap, disimpan apa adanya
	Email     string         `gorm:"type:varchar(255)" json:"email"`
	Facebook  string         `gorm:"type:text" json:"facebook"`
	Instagram string         `gorm:"type:text" json:"instagram"`
	Tiktok    string         `gorm:"type:text" json:"tiktok"`
	MapsURL   string         `gorm:"column:maps_url;type:text" json:"maps_url"`
	Schedule  datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"schedule"` // daftar {day, hours}
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ContactModel) TableName() string {
	return "contact"
}
