package model

import (
	"time"

	"gorm.io/datatypes"
)

type WeeklyScheduleModel struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Day        string         `gorm:"type:varchar(20);not null" json:"day"`
	Activities datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"activities"` // daftar string
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WeeklyScheduleModel) TableName() string {
	return "weekly_schedules"
}
