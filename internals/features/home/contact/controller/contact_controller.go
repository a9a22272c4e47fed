package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/contact/dto"
	"tknurulhasanah_backend/internals/features/home/contact/model"
	helper "tknurulhasanah_backend/internals/helpers"
	"tknurulhasanah_backend/internals/realtime"
	"tknurulhasanah_backend/internals/seeds"
)

var validateContact = validator.New()

// ContactController mengelola baris tunggal info kontak (id=1).
type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// =============================
// 📄 Get (admin)
// =============================
func (ctrl *ContactController) GetContact(c *fiber.Ctx) error {
	var contact model.ContactModel
	if err := ctrl.DB.First(&contact, "id = ?", 1).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Info kontak belum tersedia")
	}
	return helper.Success(c, "OK", dto.ToContactDTO(contact))
}

// =============================
// 🌐 Get (publik) - fallback ke default
// =============================
func (ctrl *ContactController) GetPublicContact(c *fiber.Ctx) error {
	var contact model.ContactModel
	if err := ctrl.DB.First(&contact, "id = ?", 1).Error; err != nil {
		return helper.Success(c, "OK", dto.ToContactDTO(seeds.DefaultContact()))
	}
	return helper.Success(c, "OK", dto.ToContactDTO(contact))
}

// =============================
// 🔄 Update (upsert id=1)
// =============================
func (ctrl *ContactController) UpdateContact(c *fiber.Ctx) error {
	var body dto.UpdateContactRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var contact model.ContactModel
	if err := ctrl.DB.First(&contact, "id = ?", 1).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan info kontak")
		}
		contact = model.ContactModel{ID: 1}
	}

	contact.Address = body.Address
	contact.Phone = body.Phone
	contact.Whatsapp = body.Whatsapp
	contact.Email = body.Email
	contact.Facebook = body.Facebook
	contact.Instagram = body.Instagram
	contact.Tiktok = body.Tiktok
	contact.MapsURL = body.MapsURL
	contact.Schedule = dto.ScheduleJSON(body.Schedule)
	contact.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(&contact).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan info kontak")
	}

	realtime.Publish(model.ContactModel{}.TableName(), realtime.EventUpdate)
	return helper.Success(c, "Info kontak disimpan", dto.ToContactDTO(contact))
}
