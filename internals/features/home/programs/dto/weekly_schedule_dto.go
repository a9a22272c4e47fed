package dto

import (
	"time"

	"tknurulhasanah_backend/internals/features/home/programs/model"
)

type WeeklyScheduleDTO struct {
	ID         uint      `json:"id"`
	Day        string    `json:"day"`
	Activities []string  `json:"activities"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateWeeklyScheduleRequest struct {
	Day        string   `json:"day" validate:"required,max=20"`
	Activities []string `json:"activities" validate:"dive,max=255"`
}

type UpdateWeeklyScheduleRequest struct {
	Day        string   `json:"day" validate:"required,max=20"`
	Activities []string `json:"activities" validate:"dive,max=255"`
}

func ToWeeklyScheduleDTO(m model.WeeklyScheduleModel) WeeklyScheduleDTO {
	return WeeklyScheduleDTO{
		ID:         m.ID,
		Day:        m.Day,
		Activities: decodeStringList(m.Activities),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToWeeklyScheduleDTOs(ms []model.WeeklyScheduleModel) []WeeklyScheduleDTO {
	out := make([]WeeklyScheduleDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToWeeklyScheduleDTO(m))
	}
	return out
}
