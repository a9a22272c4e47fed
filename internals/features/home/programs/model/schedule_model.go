package model

import "time"

// ScheduleModel adalah jadwal harian, tampil sesuai urutan input.
type ScheduleModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Time        string    `gorm:"column:time;type:varchar(50);not null" json:"time"` // mis. "07.00 - 07.30"
	Activity    string    `gorm:"type:varchar(255);not null" json:"activity"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}
