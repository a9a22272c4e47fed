package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/gallery/dto"
	"tknurulhasanah_backend/internals/features/home/gallery/model"
	helper "tknurulhasanah_backend/internals/helpers"
	"tknurulhasanah_backend/internals/realtime"
	"tknurulhasanah_backend/internals/seeds"
)

var validateGallery = validator.New()

type GalleryController struct {
	DB *gorm.DB
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{DB: db}
}

// =============================
// 📄 Get All - terbaru duluan
// =============================
func (ctrl *GalleryController) GetAllGallery(c *fiber.Ctx) error {
	var items []model.GalleryModel
	if err := ctrl.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil galeri")
	}
	return helper.Success(c, "OK", dto.ToGalleryDTOs(items))
}

// =============================
// 🌐 Get All (publik) - fallback ke konten default saat kosong
// =============================
func (ctrl *GalleryController) GetPublicGallery(c *fiber.Ctx) error {
	var items []model.GalleryModel
	if err := ctrl.DB.Order("created_at DESC").Find(&items).Error; err != nil || len(items) == 0 {
		return helper.Success(c, "OK", dto.ToGalleryDTOs(seeds.DefaultGallery()))
	}
	return helper.Success(c, "OK", dto.ToGalleryDTOs(items))
}

// =============================
// ➕ Create
// =============================
func (ctrl *GalleryController) CreateGallery(c *fiber.Ctx) error {
	var body dto.CreateGalleryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if !model.IsValidCategory(body.Category) {
		return helper.Error(c, fiber.StatusBadRequest, "Kategori galeri tidak dikenal")
	}
	if err := helper.ValidateImageRef(body.Image); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	item := model.GalleryModel{
		Image:    body.Image,
		Title:    body.Title,
		Category: body.Category,
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan foto")
	}

	realtime.Publish(model.GalleryModel{}.TableName(), realtime.EventInsert)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Foto ditambahkan", dto.ToGalleryDTO(item))
}

// =============================
// 🔄 Update
// =============================
func (ctrl *GalleryController) UpdateGallery(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateGalleryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if !model.IsValidCategory(body.Category) {
		return helper.Error(c, fiber.StatusBadRequest, "Kategori galeri tidak dikenal")
	}
	if err := helper.ValidateImageRef(body.Image); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var item model.GalleryModel
	if err := ctrl.DB.First(&item, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Foto tidak ditemukan")
	}

	item.Image = body.Image
	item.Title = body.Title
	item.Category = body.Category
	item.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(&item).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui foto")
	}

	realtime.Publish(model.GalleryModel{}.TableName(), realtime.EventUpdate)
	return helper.Success(c, "Foto diperbarui", dto.ToGalleryDTO(item))
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *GalleryController) DeleteGallery(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.GalleryModel{}, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus foto")
	}

	realtime.Publish(model.GalleryModel{}.TableName(), realtime.EventDelete)
	return c.SendStatus(fiber.StatusNoContent)
}
