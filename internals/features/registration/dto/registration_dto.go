package dto

import (
	"time"

	"tknurulhasanah_backend/internals/features/registration/model"
)

type RegistrationDTO struct {
	ID          uint      `json:"id"`
	ChildName   string    `json:"child_name"`
	ChildAge    string    `json:"child_age"`
	BirthDate   string    `json:"birth_date"`
	ParentName  string    `json:"parent_name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// CreateRegistrationRequest adalah formulir pendaftaran publik.
// Nomor telepon wajib 10-13 digit angka murni: excludesall menutup
// celah tanda +/- dan desimal yang masih lolos tag numeric.
type CreateRegistrationRequest struct {
	ChildName  string `json:"child_name" validate:"required,min=3,max=255"`
	ChildAge   string `json:"child_age" validate:"required,max=10"`
	BirthDate  string `json:"birth_date" validate:"required,max=30"`
	ParentName string `json:"parent_name" validate:"required,min=3,max=255"`
	Phone      string `json:"phone" validate:"required,numeric,excludesall=+-.,min=10,max=13"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Address    string `json:"address" validate:"required,max=5000"`
}

func ToRegistrationDTO(m model.RegistrationModel) RegistrationDTO {
	return RegistrationDTO{
		ID:          m.ID,
		ChildName:   m.ChildName,
		ChildAge:    m.ChildAge,
		BirthDate:   m.BirthDate,
		ParentName:  m.ParentName,
		Phone:       m.Phone,
		Email:       m.Email,
		Address:     m.Address,
		SubmittedAt: m.SubmittedAt,
	}
}

func ToRegistrationDTOs(ms []model.RegistrationModel) []RegistrationDTO {
	out := make([]RegistrationDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToRegistrationDTO(m))
	}
	return out
}
