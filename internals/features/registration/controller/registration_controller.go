package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/registration/dto"
	"tknurulhasanah_backend/internals/features/registration/model"
	helper "tknurulhasanah_backend/internals/helpers"
	"tknurulhasanah_backend/internals/realtime"
)

var validateRegistration = validator.New()

// RegistrationController mengelola formulir pendaftaran siswa baru.
// Alur append-only: publik membuat, admin membaca dan menghapus.
type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

// =============================
// 📄 Get All (admin) - terbaru duluan
// =============================
func (ctrl *RegistrationController) GetAllRegistrations(c *fiber.Ctx) error {
	var regs []model.RegistrationModel
	if err := ctrl.DB.Order("submitted_at DESC").Find(&regs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pendaftaran")
	}
	return helper.Success(c, "OK", dto.ToRegistrationDTOs(regs))
}

// =============================
// ➕ Create (publik) - waktu kirim dicap server
// =============================
func (ctrl *RegistrationController) CreateRegistration(c *fiber.Ctx) error {
	var body dto.CreateRegistrationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateRegistration.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	reg := model.RegistrationModel{
		ChildName:   body.ChildName,
		ChildAge:    body.ChildAge,
		BirthDate:   body.BirthDate,
		ParentName:  body.ParentName,
		Phone:       body.Phone,
		Email:       body.Email,
		Address:     body.Address,
		SubmittedAt: time.Now(),
	}
	if err := ctrl.DB.Create(&reg).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengirim pendaftaran")
	}

	realtime.Publish(model.RegistrationModel{}.TableName(), realtime.EventInsert)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pendaftaran terkirim", dto.ToRegistrationDTO(reg))
}

// =============================
// 🗑️ Delete (admin)
// =============================
func (ctrl *RegistrationController) DeleteRegistration(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.RegistrationModel{}, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus pendaftaran")
	}

	realtime.Publish(model.RegistrationModel{}.TableName(), realtime.EventDelete)
	return c.SendStatus(fiber.StatusNoContent)
}
