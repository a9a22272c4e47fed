package dto

import (
	"time"

	"tknurulhasanah_backend/internals/features/home/contact/model"
)

type FooterDTO struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Facebook    string    `json:"facebook"`
	Instagram   string    `json:"instagram"`
	Tiktok      string    `json:"tiktok"`
	Whatsapp    string    `json:"whatsapp"`
	Copyright   string    `json:"copyright"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpdateFooterRequest struct {
	Description string `json:"description" validate:"max=5000"`
	Address     string `json:"address" validate:"max=5000"`
	Phone       string `json:"phone" validate:"max=50"`
	Email       string `json:"email" validate:"omitempty,email"`
	Facebook    string `json:"facebook" validate:"max=2000"`
	Instagram   string `json:"instagram" validate:"max=2000"`
	Tiktok      string `json:"tiktok" validate:"max=2000"`
	Whatsapp    string `json:"whatsapp" validate:"max=2000"`
	Copyright   string `json:"copyright" validate:"max=255"`
}

func ToFooterDTO(m model.FooterModel) FooterDTO {
	return FooterDTO{
		ID:          m.ID,
		Description: m.Description,
		Address:     m.Address,
		Phone:       m.Phone,
		Email:       m.Email,
		Facebook:    m.Facebook,
		Instagram:   m.Instagram,
		Tiktok:      m.Tiktok,
		Whatsapp:    m.Whatsapp,
		Copyright:   m.Copyright,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
