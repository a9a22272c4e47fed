package model

import (
	"time"

	"gorm.io/datatypes"
)

// RegistrationInfoModel adalah baris tunggal (id=1) berisi info pendaftaran.
type RegistrationInfoModel struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"type:varchar(255);not null" json:"title"`
	Subtitle     string         `gorm:"type:text" json:"subtitle"`
	Requirements datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'" json:"requirements"` // daftar {title, description}
	Fee          datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"fee"`          // {title, description}
	Period       datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"period"`       // {title, description}
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RegistrationInfoModel) TableName() string {
	return "registration_info"
}
