package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/programs/dto"
	"tknurulhasanah_backend/internals/features/home/programs/model"
	helper "tknurulhasanah_backend/internals/helpers"
	"tknurulhasanah_backend/internals/realtime"
	"tknurulhasanah_backend/internals/seeds"
)

var validatePrograms = validator.New()

type ProgramController struct {
	DB *gorm.DB
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db}
}

// =============================
// 📄 Get All
// =============================
func (ctrl *ProgramController) GetAllPrograms(c *fiber.Ctx) error {
	var programs []model.ProgramModel
	if err := ctrl.DB.Order("created_at ASC").Find(&programs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil program")
	}
	return helper.Success(c, "OK", dto.ToProgramDTOs(programs))
}

// =============================
// 🌐 Get All (publik) - fallback ke konten default saat kosong
// =============================
func (ctrl *ProgramController) GetPublicPrograms(c *fiber.Ctx) error {
	var programs []model.ProgramModel
	if err := ctrl.DB.Order("created_at ASC").Find(&programs).Error; err != nil || len(programs) == 0 {
		return helper.Success(c, "OK", dto.ToProgramDTOs(seeds.DefaultPrograms()))
	}
	return helper.Success(c, "OK", dto.ToProgramDTOs(programs))
}

// =============================
// ➕ Create
// =============================
func (ctrl *ProgramController) CreateProgram(c *fiber.Ctx) error {
	var body dto.CreateProgramRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePrograms.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	program := model.ProgramModel{
		Title:       body.Title,
		Description: body.Description,
		Features:    dto.FeaturesJSON(body.Features),
	}
	if err := ctrl.DB.Create(&program).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan program")
	}

	realtime.Publish(model.ProgramModel{}.TableName(), realtime.EventInsert)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Program dibuat", dto.ToProgramDTO(program))
}

// =============================
// 🔄 Update
// =============================
func (ctrl *ProgramController) UpdateProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateProgramRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePrograms.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var program model.ProgramModel
	if err := ctrl.DB.First(&program, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Program tidak ditemukan")
	}

	program.Title = body.Title
	program.Description = body.Description
	program.Features = dto.FeaturesJSON(body.Features)
	program.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(&program).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui program")
	}

	realtime.Publish(model.ProgramModel{}.TableName(), realtime.EventUpdate)
	return helper.Success(c, "Program diperbarui", dto.ToProgramDTO(program))
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *ProgramController) DeleteProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.ProgramModel{}, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus program")
	}

	realtime.Publish(model.ProgramModel{}.TableName(), realtime.EventDelete)
	return c.SendStatus(fiber.StatusNoContent)
}
