package dto

import (
	"time"

	"tknurulhasanah_backend/internals/features/home/gallery/model"
)

type GalleryDTO struct {
	ID        uint      `json:"id"`
	Image     string    `json:"image"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateGalleryRequest struct {
	Image    string `json:"image" validate:"required"`
	Title    string `json:"title" validate:"required,min=3,max=255"`
	Category string `json:"category" validate:"required,max=50"`
}

type UpdateGalleryRequest struct {
	Image    string `json:"image" validate:"required"`
	Title    string `json:"title" validate:"required,min=3,max=255"`
	Category string `json:"category" validate:"required,max=50"`
}

func ToGalleryDTO(m model.GalleryModel) GalleryDTO {
	return GalleryDTO{
		ID:        m.ID,
		Image:     m.Image,
		Title:     m.Title,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToGalleryDTOs(ms []model.GalleryModel) []GalleryDTO {
	out := make([]GalleryDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToGalleryDTO(m))
	}
	return out
}
