package dto

import (
	"time"

	"tknurulhasanah_backend/internals/features/home/news/model"
)

type NewsDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Date      string    `json:"date"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateNewsRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=255"`
	Excerpt  string `json:"excerpt" validate:"max=5000"`
	Content  string `json:"content"`
	Date     string `json:"date" validate:"max=50"`
	Author   string `json:"author" validate:"max=100"`
	Category string `json:"category" validate:"max=50"`
	Image    string `json:"image"`
}

type UpdateNewsRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=255"`
	Excerpt  string `json:"excerpt" validate:"max=5000"`
	Content  string `json:"content"`
	Date     string `json:"date" validate:"max=50"`
	Author   string `json:"author" validate:"max=100"`
	Category string `json:"category" validate:"max=50"`
	Image    string `json:"image"`
}

func ToNewsDTO(m model.NewsModel) NewsDTO {
	return NewsDTO{
		ID:        m.ID,
		Title:     m.Title,
		Excerpt:   m.Excerpt,
		Content:   m.Content,
		Date:      m.Date,
		Author:    m.Author,
		Category:  m.Category,
		Image:     m.Image,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToNewsDTOs(ms []model.NewsModel) []NewsDTO {
	out := make([]NewsDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToNewsDTO(m))
	}
	return out
}
