package dto

import (
	"time"

	"tknurulhasanah_backend/internals/features/home/profile/model"
)

// ============================
// Profile (visi & misi) - singleton
// ============================

type ProfileDTO struct {
	ID        uint      `json:"id"`
	Visi      string    `json:"visi"`
	Misi      string    `json:"misi"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateProfileRequest struct {
	Visi string `json:"visi" validate:"required"`
	Misi string `json:"misi" validate:"required"`
}

func ToProfileDTO(m model.ProfileModel) ProfileDTO {
	return ProfileDTO{
		ID:        m.ID,
		Visi:      m.Visi,
		Misi:      m.Misi,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
