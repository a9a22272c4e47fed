package model

import (
	"time"

	"gorm.io/datatypes"
)

type ProgramModel struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Features    datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"features"` // daftar string
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ProgramModel) TableName() string {
	return "programs"
}
