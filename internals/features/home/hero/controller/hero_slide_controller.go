package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/hero/dto"
	"tknurulhasanah_backend/internals/features/home/hero/model"
	helper "tknurulhasanah_backend/internals/helpers"
	"tknurulhasanah_backend/internals/realtime"
	"tknurulhasanah_backend/internals/seeds"
)

var validateHero = validator.New()

type HeroSlideController struct {
	DB *gorm.DB
}

func NewHeroSlideController(db *gorm.DB) *HeroSlideController {
	return &HeroSlideController{DB: db}
}

// =============================
// 📄 Get All (admin) - urut posisi
// =============================
func (ctrl *HeroSlideController) GetAllHeroSlides(c *fiber.Ctx) error {
	var slides []model.HeroSlideModel
	if err := ctrl.DB.Order("position ASC").Find(&slides).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil hero slides")
	}
	return helper.Success(c, "OK", dto.ToHeroSlideDTOs(slides))
}

// =============================
// 🌐 Get All (publik) - fallback ke konten default saat kosong
// =============================
func (ctrl *HeroSlideController) GetPublicHeroSlides(c *fiber.Ctx) error {
	var slides []model.HeroSlideModel
	if err := ctrl.DB.Order("position ASC").Find(&slides).Error; err != nil || len(slides) == 0 {
		return helper.Success(c, "OK", dto.ToHeroSlideDTOs(seeds.DefaultHeroSlides()))
	}
	return helper.Success(c, "OK", dto.ToHeroSlideDTOs(slides))
}

// =============================
// ➕ Create
// =============================
func (ctrl *HeroSlideController) CreateHeroSlide(c *fiber.Ctx) error {
	var body dto.CreateHeroSlideRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHero.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := helper.ValidateImageRef(body.Image); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	slide := model.HeroSlideModel{
		Title:       body.Title,
		Subtitle:    body.Subtitle,
		Description: body.Description,
		Image:       body.Image,
		Color:       body.Color,
		Position:    body.Position,
	}
	if err := ctrl.DB.Create(&slide).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan hero slide")
	}

	realtime.Publish(model.HeroSlideModel{}.TableName(), realtime.EventInsert)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Hero slide dibuat", dto.ToHeroSlideDTO(slide))
}

// =============================
// 🔄 Update
// =============================
func (ctrl *HeroSlideController) UpdateHeroSlide(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateHeroSlideRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHero.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := helper.ValidateImageRef(body.Image); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var slide model.HeroSlideModel
	if err := ctrl.DB.First(&slide, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Hero slide tidak ditemukan")
	}

	slide.Title = body.Title
	slide.Subtitle = body.Subtitle
	slide.Description = body.Description
	slide.Image = body.Image
	slide.Color = body.Color
	slide.Position = body.Position
	slide.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(&slide).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui hero slide")
	}

	realtime.Publish(model.HeroSlideModel{}.TableName(), realtime.EventUpdate)
	return helper.Success(c, "Hero slide diperbarui", dto.ToHeroSlideDTO(slide))
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *HeroSlideController) DeleteHeroSlide(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.HeroSlideModel{}, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus hero slide")
	}

	realtime.Publish(model.HeroSlideModel{}.TableName(), realtime.EventDelete)
	return c.SendStatus(fiber.StatusNoContent)
}
