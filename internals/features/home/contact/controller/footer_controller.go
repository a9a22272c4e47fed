package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/contact/dto"
	"tknurulhasanah_backend/internals/features/home/contact/model"
	helper "tknurulhasanah_backend/internals/helpers"
	"tknurulhasanah_backend/internals/realtime"
	"tknurulhasanah_backend/internals/seeds"
)

// FooterController mengelola baris tunggal konten footer (id=1).
type FooterController struct {
	DB *gorm.DB
}

func NewFooterController(db *gorm.DB) *FooterController {
	return &FooterController{DB: db}
}

// =============================
// 📄 Get (admin)
// =============================
func (ctrl *FooterController) GetFooter(c *fiber.Ctx) error {
	var footer model.FooterModel
	if err := ctrl.DB.First(&footer, "id = ?", 1).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Konten footer belum tersedia")
	}
	return helper.Success(c, "OK", dto.ToFooterDTO(footer))
}

// =============================
// 🌐 Get (publik) - fallback ke default
// =============================
func (ctrl *FooterController) GetPublicFooter(c *fiber.Ctx) error {
	var footer model.FooterModel
	if err := ctrl.DB.First(&footer, "id = ?", 1).Error; err != nil {
		return helper.Success(c, "OK", dto.ToFooterDTO(seeds.DefaultFooter()))
	}
	return helper.Success(c, "OK", dto.ToFooterDTO(footer))
}

// =============================
// 🔄 Update (upsert id=1)
// =============================
func (ctrl *FooterController) UpdateFooter(c *fiber.Ctx) error {
	var body dto.UpdateFooterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var footer model.FooterModel
	if err := ctrl.DB.First(&footer, "id = ?", 1).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan konten footer")
		}
		footer = model.FooterModel{ID: 1}
	}

	footer.Description = body.Description
	footer.Address = body.Address
	footer.Phone = body.Phone
	footer.Email = body.Email
	footer.Facebook = body.Facebook
	footer.Instagram = body.Instagram
	footer.Tiktok = body.Tiktok
	footer.Whatsapp = body.Whatsapp
	footer.Copyright = body.Copyright
	footer.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(&footer).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan konten footer")
	}

	realtime.Publish(model.FooterModel{}.TableName(), realtime.EventUpdate)
	return helper.Success(c, "Konten footer disimpan", dto.ToFooterDTO(footer))
}
