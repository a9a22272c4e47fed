package dto

import (
	"time"

	"tknurulhasanah_backend/internals/features/home/profile/model"
)

type ValueDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateValueRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type UpdateValueRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func ToValueDTO(m model.ValueModel) ValueDTO {
	return ValueDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Icon:        m.Icon,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToValueDTOs(models []model.ValueModel) []ValueDTO {
	result := make([]ValueDTO, 0, len(models))
	for _, m := range models {
		result = append(result, ToValueDTO(m))
	}
	return result
}
