package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"

	"tknurulhasanah_backend/internals/features/registration/model"
)

// InfoSection adalah blok berjudul di halaman pendaftaran, mis. biaya atau periode.
type InfoSection struct {
	Title       string `json:"title" validate:"max=255"`
	Description string `json:"description" validate:"max=5000"`
}

type RegistrationInfoDTO struct {
	ID           uint          `json:"id"`
	Title        string        `json:"title"`
	Subtitle     string        `json:"subtitle"`
	Requirements []InfoSection `json:"requirements"`
	Fee          InfoSection   `json:"fee"`
	Period       InfoSection   `json:"period"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type UpdateRegistrationInfoRequest struct {
	Title        string        `json:"title" validate:"required,min=3,max=255"`
	Subtitle     string        `json:"subtitle" validate:"max=5000"`
	Requirements []InfoSection `json:"requirements" validate:"dive"`
	Fee          InfoSection   `json:"fee"`
	Period       InfoSection   `json:"period"`
}

func SectionsJSON(sections []InfoSection) datatypes.JSON {
	if sections == nil {
		sections = []InfoSection{}
	}
	b, err := sonic.Marshal(sections)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

func SectionJSON(section InfoSection) datatypes.JSON {
	b, err := sonic.Marshal(section)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(b)
}

func decodeSections(raw datatypes.JSON) []InfoSection {
	var out []InfoSection
	if len(raw) > 0 {
		_ = sonic.Unmarshal(raw, &out)
	}
	if out == nil {
		out = []InfoSection{}
	}
	return out
}

func decodeSection(raw datatypes.JSON) InfoSection {
	var out InfoSection
	if len(raw) > 0 {
		_ = sonic.Unmarshal(raw, &out)
	}
	return out
}

func ToRegistrationInfoDTO(m model.RegistrationInfoModel) RegistrationInfoDTO {
	return RegistrationInfoDTO{
		ID:           m.ID,
		Title:        m.Title,
		Subtitle:     m.Subtitle,
		Requirements: decodeSections(m.Requirements),
		Fee:          decodeSection(m.Fee),
		Period:       decodeSection(m.Period),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
