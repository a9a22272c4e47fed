package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/profile/dto"
	"tknurulhasanah_backend/internals/features/home/profile/model"
	helper "tknurulhasanah_backend/internals/helpers"
	"tknurulhasanah_backend/internals/realtime"
)

type ValueController struct {
	DB *gorm.DB
}

func NewValueController(db *gorm.DB) *ValueController {
	return &ValueController{DB: db}
}

// =============================
// 📄 Get All - urut waktu dibuat
// =============================
func (ctrl *ValueController) GetAllValues(c *fiber.Ctx) error {
	var values []model.ValueModel
	if err := ctrl.DB.Order("created_at ASC").Find(&values).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil nilai-nilai")
	}
	return helper.Success(c, "OK", dto.ToValueDTOs(values))
}

// =============================
// 🌐 Get All (publik) - daftar kosong sah, tanpa fallback
// =============================
func (ctrl *ValueController) GetPublicValues(c *fiber.Ctx) error {
	var values []model.ValueModel
	if err := ctrl.DB.Order("created_at ASC").Find(&values).Error; err != nil {
		return helper.Success(c, "OK", dto.ToValueDTOs(nil))
	}
	return helper.Success(c, "OK", dto.ToValueDTOs(values))
}

// =============================
// ➕ Create
// =============================
func (ctrl *ValueController) CreateValue(c *fiber.Ctx) error {
	var body dto.CreateValueRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProfile.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	value := model.ValueModel{
		Title:       body.Title,
		Description: body.Description,
		Icon:        body.Icon,
	}
	if err := ctrl.DB.Create(&value).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}

	realtime.Publish(model.ValueModel{}.TableName(), realtime.EventInsert)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Nilai dibuat", dto.ToValueDTO(value))
}

// =============================
// 🔄 Update
// =============================
func (ctrl *ValueController) UpdateValue(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateValueRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProfile.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var value model.ValueModel
	if err := ctrl.DB.First(&value, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
	}

	value.Title = body.Title
	value.Description = body.Description
	value.Icon = body.Icon
	value.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(&value).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui nilai")
	}

	realtime.Publish(model.ValueModel{}.TableName(), realtime.EventUpdate)
	return helper.Success(c, "Nilai diperbarui", dto.ToValueDTO(value))
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *ValueController) DeleteValue(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.ValueModel{}, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus nilai")
	}

	realtime.Publish(model.ValueModel{}.TableName(), realtime.EventDelete)
	return c.SendStatus(fiber.StatusNoContent)
}
