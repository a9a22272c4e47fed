package dto

import (
	"time"

	"tknurulhasanah_backend/internals/features/home/hero/model"
)

// ============================
// Response DTO
// ============================

type HeroSlideDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Color       string    `json:"color"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateHeroSlideRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Color       string `json:"color"`
	Position    int    `json:"position"`
}

type UpdateHeroSlideRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Color       string `json:"color"`
	Position    int    `json:"position"`
}

// ============================
// Converter
// ============================

func ToHeroSlideDTO(m model.HeroSlideModel) HeroSlideDTO {
	return HeroSlideDTO{
		ID:          m.ID,
		Title:       m.Title,
		Subtitle:    m.Subtitle,
		Description: m.Description,
		Image:       m.Image,
		Color:       m.Color,
		Position:    m.Position,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToHeroSlideDTOs(models []model.HeroSlideModel) []HeroSlideDTO {
	result := make([]HeroSlideDTO, 0, len(models))
	for _, m := range models {
		result = append(result, ToHeroSlideDTO(m))
	}
	return result
}
