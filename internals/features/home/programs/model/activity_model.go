package model

import "time"

// Tiga tabel paralel dengan bentuk sama: kegiatan mingguan, bulanan, tahunan.

type ActivityFields struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type WeeklyActivityModel struct {
	ActivityFields
}

func (WeeklyActivityModel) TableName() string {
	return "weekly_activities"
}

type MonthlyActivityModel struct {
	ActivityFields
}

func (MonthlyActivityModel) TableName() string {
	return "monthly_activities"
}

type YearlyActivityModel struct {
	ActivityFields
}

func (YearlyActivityModel) TableName() string {
	return "yearly_activities"
}
