package model

import "time"

// RegistrationModel bersifat append-only: dibuat dari formulir publik,
// hanya bisa dihapus oleh admin, tidak ada jalur update.
type RegistrationModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ChildName   string    `gorm:"column:child_name;type:varchar(255);not null" json:"child_name"`
	ChildAge    string    `gorm:"column:child_age;type:varchar(10);not null" json:"child_age"`
	BirthDate   string    `gorm:"column:birth_date;type:varchar(30);not null" json:"birth_date"`
	ParentName  string    `gorm:"column:parent_name;type:varchar(255);not null" json:"parent_name"`
	Phone       string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	Address     string    `gorm:"type:text;not null" json:"address"`
	SubmittedAt time.Time `gorm:"column:submitted_at;not null" json:"submitted_at"`
}

func (RegistrationModel) TableName() string {
	return "registrations"
}
