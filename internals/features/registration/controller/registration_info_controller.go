package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/registration/dto"
	"tknurulhasanah_backend/internals/features/registration/model"
	helper "tknurulhasanah_backend/internals/helpers"
	"tknurulhasanah_backend/internals/realtime"
	"tknurulhasanah_backend/internals/seeds"
)

// RegistrationInfoController mengelola baris tunggal info pendaftaran (id=1).
type RegistrationInfoController struct {
	DB *gorm.DB
}

func NewRegistrationInfoController(db *gorm.DB) *RegistrationInfoController {
	return &RegistrationInfoController{DB: db}
}

// =============================
// 📄 Get (admin)
// =============================
func (ctrl *RegistrationInfoController) GetRegistrationInfo(c *fiber.Ctx) error {
	var info model.RegistrationInfoModel
	if err := ctrl.DB.First(&info, "id = ?", 1).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Info pendaftaran belum tersedia")
	}
	return helper.Success(c, "OK", dto.ToRegistrationInfoDTO(info))
}

// =============================
// 🌐 Get (publik) - fallback ke default
// =============================
func (ctrl *RegistrationInfoController) GetPublicRegistrationInfo(c *fiber.Ctx) error {
	var info model.RegistrationInfoModel
	if err := ctrl.DB.First(&info, "id = ?", 1).Error; err != nil {
		return helper.Success(c, "OK", dto.ToRegistrationInfoDTO(seeds.DefaultRegistrationInfo()))
	}
	return helper.Success(c, "OK", dto.ToRegistrationInfoDTO(info))
}

// =============================
// 🔄 Update (upsert id=1)
// =============================
func (ctrl *RegistrationInfoController) UpdateRegistrationInfo(c *fiber.Ctx) error {
	var body dto.UpdateRegistrationInfoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateRegistration.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var info model.RegistrationInfoModel
	if err := ctrl.DB.First(&info, "id = ?", 1).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan info pendaftaran")
		}
		info = model.RegistrationInfoModel{ID: 1}
	}

	info.Title = body.Title
	info.Subtitle = body.Subtitle
	info.Requirements = dto.SectionsJSON(body.Requirements)
	info.Fee = dto.SectionJSON(body.Fee)
	info.Period = dto.SectionJSON(body.Period)
	info.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(&info).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan info pendaftaran")
	}

	realtime.Publish(model.RegistrationInfoModel{}.TableName(), realtime.EventUpdate)
	return helper.Success(c, "Info pendaftaran disimpan", dto.ToRegistrationInfoDTO(info))
}
