package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"

	"tknurulhasanah_backend/internals/features/home/programs/model"
)

type ProgramDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateProgramRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=255"`
	Description string   `json:"description" validate:"max=5000"`
	Features    []string `json:"features" validate:"dive,max=255"`
}

type UpdateProgramRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=255"`
	Description string   `json:"description" validate:"max=5000"`
	Features    []string `json:"features" validate:"dive,max=255"`
}

// FeaturesJSON mengubah daftar fitur jadi kolom jsonb; nil dianggap daftar kosong.
func FeaturesJSON(features []string) datatypes.JSON {
	if features == nil {
		features = []string{}
	}
	b, err := sonic.Marshal(features)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

func decodeStringList(raw datatypes.JSON) []string {
	var out []string
	if len(raw) > 0 {
		_ = sonic.Unmarshal(raw, &out)
	}
	if out == nil {
		out = []string{}
	}
	return out
}

func ToProgramDTO(m model.ProgramModel) ProgramDTO {
	return ProgramDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Features:    decodeStringList(m.Features),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToProgramDTOs(ms []model.ProgramModel) []ProgramDTO {
	out := make([]ProgramDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToProgramDTO(m))
	}
	return out
}
