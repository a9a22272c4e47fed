package model

import "time"

// ProfileModel adalah baris tunggal (id=1) berisi visi & misi sekolah.
type ProfileModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Visi      string    `gorm:"type:text;not null" json:"visi"`
	Misi      string    `gorm:"type:text;not null" json:"misi"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ProfileModel) TableName() string {
	return "profile"
}
