package dto

import (
	"time"

	"tknurulhasanah_backend/internals/features/home/programs/model"
)

type ScheduleDTO struct {
	ID          uint      `json:"id"`
	Time        string    `json:"time"`
	Activity    string    `json:"activity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateScheduleRequest struct {
	Time        string `json:"time" validate:"required,max=50"`
	Activity    string `json:"activity" validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"max=5000"`
}

type UpdateScheduleRequest struct {
	Time        string `json:"time" validate:"required,max=50"`
	Activity    string `json:"activity" validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"max=5000"`
}

func ToScheduleDTO(m model.ScheduleModel) ScheduleDTO {
	return ScheduleDTO{
		ID:          m.ID,
		Time:        m.Time,
		Activity:    m.Activity,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToScheduleDTOs(ms []model.ScheduleModel) []ScheduleDTO {
	out := make([]ScheduleDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToScheduleDTO(m))
	}
	return out
}
