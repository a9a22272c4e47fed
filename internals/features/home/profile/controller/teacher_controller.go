package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/profile/dto"
	"tknurulhasanah_backend/internals/features/home/profile/model"
	helper "tknurulhasanah_backend/internals/helpers"
	"tknurulhasanah_backend/internals/realtime"
	"tknurulhasanah_backend/internals/seeds"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

// =============================
// 📄 Get All - urut waktu dibuat
// =============================
func (ctrl *TeacherController) GetAllTeachers(c *fiber.Ctx) error {
	var teachers []model.TeacherModel
	if err := ctrl.DB.Order("created_at ASC").Find(&teachers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}
	return helper.Success(c, "OK", dto.ToTeacherDTOs(teachers))
}

// =============================
// 🌐 Get All (publik) - fallback ke konten default saat kosong
// =============================
func (ctrl *TeacherController) GetPublicTeachers(c *fiber.Ctx) error {
	var teachers []model.TeacherModel
	if err := ctrl.DB.Order("created_at ASC").Find(&teachers).Error; err != nil || len(teachers) == 0 {
		return helper.Success(c, "OK", dto.ToTeacherDTOs(seeds.DefaultTeachers()))
	}
	return helper.Success(c, "OK", dto.ToTeacherDTOs(teachers))
}

// =============================
// ➕ Create
// =============================
func (ctrl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var body dto.CreateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProfile.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := helper.ValidateImageRef(body.Photo); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	teacher := model.TeacherModel{
		Name:        body.Name,
		Position:    body.Position,
		Photo:       body.Photo,
		Description: body.Description,
	}
	if err := ctrl.DB.Create(&teacher).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan data guru")
	}

	realtime.Publish(model.TeacherModel{}.TableName(), realtime.EventInsert)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Data guru dibuat", dto.ToTeacherDTO(teacher))
}

// =============================
// 🔄 Update
// =============================
func (ctrl *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProfile.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := helper.ValidateImageRef(body.Photo); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var teacher model.TeacherModel
	if err := ctrl.DB.First(&teacher, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Data guru tidak ditemukan")
	}

	teacher.Name = body.Name
	teacher.Position = body.Position
	teacher.Photo = body.Photo
	teacher.Description = body.Description
	teacher.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(&teacher).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui data guru")
	}

	realtime.Publish(model.TeacherModel{}.TableName(), realtime.EventUpdate)
	return helper.Success(c, "Data guru diperbarui", dto.ToTeacherDTO(teacher))
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.TeacherModel{}, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus data guru")
	}

	realtime.Publish(model.TeacherModel{}.TableName(), realtime.EventDelete)
	return c.SendStatus(fiber.StatusNoContent)
}
