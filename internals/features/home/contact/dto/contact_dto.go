package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"

	"tknurulhasanah_backend/internals/features/home/contact/model"
)

// ScheduleItem adalah satu baris jam operasional, mis. {"Senin - Jumat", "07.00 - 12.00"}.
type ScheduleItem struct {
	Day   string `json:"day" validate:"required,max=50"`
	Hours string `json:"hours" validate:"required,max=50"`
}

type ContactDTO struct {
	ID        uint           `json:"id"`
	Address   string         `json:"address"`
	Phone     string         `json:"phone"`
	Whatsapp  string         `json:"whatsapp"`
	Email     string         `json:"email"`
	Facebook  string         `json:"facebook"`
	Instagram string         `json:"instagram"`
	Tiktok    string         `json:"tiktok"`
	MapsURL   string         `json:"maps_url"`
	Schedule  []ScheduleItem `json:"schedule"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type UpdateContactRequest struct {
	Address   string         `json:"address" validate:"max=5000"`
	Phone     string         `json:"phone" validate:"max=50"`
	Whatsapp  string         `json:"whatsapp" validate:"max=2000"`
	Email     string         `json:"email" validate:"omitempty,email"`
	Facebook  string         `json:"facebook" validate:"max=2000"`
	Instagram string         `json:"instagram" validate:"max=2000"`
	Tiktok    string         `json:"tiktok" validate:"max=2000"`
	MapsURL   string         `json:"maps_url" validate:"max=5000"`
	Schedule  []ScheduleItem `json:"schedule" validate:"dive"`
}

// ScheduleJSON mengubah jam operasional jadi kolom jsonb; nil dianggap daftar kosong.
func ScheduleJSON(items []ScheduleItem) datatypes.JSON {
	if items == nil {
		items = []ScheduleItem{}
	}
	b, err := sonic.Marshal(items)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

func decodeSchedule(raw datatypes.JSON) []ScheduleItem {
	var out []ScheduleItem
	if len(raw) > 0 {
		_ = sonic.Unmarshal(raw, &out)
	}
	if out == nil {
		out = []ScheduleItem{}
	}
	return out
}

func ToContactDTO(m model.ContactModel) ContactDTO {
	return ContactDTO{
		ID:        m.ID,
		Address:   m.Address,
		Phone:     m.Phone,
		Whatsapp:  m.Whatsapp,
		Email:     m.Email,
		Facebook:  m.Facebook,
		Instagram: m.Instagram,
		Tiktok:    m.Tiktok,
		MapsURL:   m.MapsURL,
		Schedule:  decodeSchedule(m.Schedule),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
