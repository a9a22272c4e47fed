package model

import "time"

type TeacherModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Position    string    `gorm:"type:varchar(255)" json:"position"`
	Photo       string    `gorm:"type:text" json:"photo"` // URL atau data URI base64
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
