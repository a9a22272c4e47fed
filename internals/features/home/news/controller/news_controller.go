package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/news/dto"
	"tknurulhasanah_backend/internals/features/home/news/model"
	helper "tknurulhasanah_backend/internals/helpers"
	"tknurulhasanah_backend/internals/realtime"
	"tknurulhasanah_backend/internals/seeds"
)

var validateNews = validator.New()

type NewsController struct {
	DB *gorm.DB
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{DB: db}
}

// =============================
// 📄 Get All - terbaru duluan
// =============================
func (ctrl *NewsController) GetAllNews(c *fiber.Ctx) error {
	var items []model.NewsModel
	if err := ctrl.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil berita")
	}
	return helper.Success(c, "OK", dto.ToNewsDTOs(items))
}

// =============================
// 🌐 Get All (publik) - fallback ke konten default saat kosong
// =============================
func (ctrl *NewsController) GetPublicNews(c *fiber.Ctx) error {
	var items []model.NewsModel
	if err := ctrl.DB.Order("created_at DESC").Find(&items).Error; err != nil || len(items) == 0 {
		return helper.Success(c, "OK", dto.ToNewsDTOs(seeds.DefaultNews()))
	}
	return helper.Success(c, "OK", dto.ToNewsDTOs(items))
}

// =============================
// ➕ Create
// =============================
func (ctrl *NewsController) CreateNews(c *fiber.Ctx) error {
	var body dto.CreateNewsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNews.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := helper.ValidateImageRef(body.Image); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	item := model.NewsModel{
		Title:    body.Title,
		Excerpt:  body.Excerpt,
		Content:  body.Content,
		Date:     body.Date,
		Author:   body.Author,
		Category: body.Category,
		Image:    body.Image,
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan berita")
	}

	realtime.Publish(model.NewsModel{}.TableName(), realtime.EventInsert)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Berita dibuat", dto.ToNewsDTO(item))
}

// =============================
// 🔄 Update
// =============================
func (ctrl *NewsController) UpdateNews(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateNewsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNews.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := helper.ValidateImageRef(body.Image); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var item model.NewsModel
	if err := ctrl.DB.First(&item, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Berita tidak ditemukan")
	}

	item.Title = body.Title
	item.Excerpt = body.Excerpt
	item.Content = body.Content
	item.Date = body.Date
	item.Author = body.Author
	item.Category = body.Category
	item.Image = body.Image
	item.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(&item).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui berita")
	}

	realtime.Publish(model.NewsModel{}.TableName(), realtime.EventUpdate)
	return helper.Success(c, "Berita diperbarui", dto.ToNewsDTO(item))
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *NewsController) DeleteNews(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.NewsModel{}, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus berita")
	}

	realtime.Publish(model.NewsModel{}.TableName(), realtime.EventDelete)
	return c.SendStatus(fiber.StatusNoContent)
}
