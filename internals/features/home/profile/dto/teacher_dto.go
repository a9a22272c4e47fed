package dto

import (
	"time"

	"tknurulhasanah_backend/internals/features/home/profile/model"
)

type TeacherDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	Photo       string    `json:"photo"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateTeacherRequest struct {
	Name        string `json:"name" validate:"required"`
	Position    string `json:"position"`
	Photo       string `json:"photo"`
	Description string `json:"description"`
}

type UpdateTeacherRequest struct {
	Name        string `json:"name" validate:"required"`
	Position    string `json:"position"`
	Photo       string `json:"photo"`
	Description string `json:"description"`
}

func ToTeacherDTO(m model.TeacherModel) TeacherDTO {
	return TeacherDTO{
		ID:          m.ID,
		Name:        m.Name,
		Position:    m.Position,
		Photo:       m.Photo,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToTeacherDTOs(models []model.TeacherModel) []TeacherDTO {
	result := make([]TeacherDTO, 0, len(models))
	for _, m := range models {
		result = append(result, ToTeacherDTO(m))
	}
	return result
}
