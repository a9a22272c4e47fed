package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/programs/dto"
	"tknurulhasanah_backend/internals/features/home/programs/model"
	helper "tknurulhasanah_backend/internals/helpers"
	"tknurulhasanah_backend/internals/realtime"
	"tknurulhasanah_backend/internals/seeds"
)

// ScheduleController mengelola jadwal harian.
type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

// =============================
// 📄 Get All - urut sesuai input, bukan jam
// =============================
func (ctrl *ScheduleController) GetAllSchedules(c *fiber.Ctx) error {
	var schedules []model.ScheduleModel
	if err := ctrl.DB.Order("created_at ASC").Find(&schedules).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return helper.Success(c, "OK", dto.ToScheduleDTOs(schedules))
}

// =============================
// 🌐 Get All (publik)
// =============================
func (ctrl *ScheduleController) GetPublicSchedules(c *fiber.Ctx) error {
	var schedules []model.ScheduleModel
	if err := ctrl.DB.Order("created_at ASC").Find(&schedules).Error; err != nil || len(schedules) == 0 {
		return helper.Success(c, "OK", dto.ToScheduleDTOs(seeds.DefaultSchedules()))
	}
	return helper.Success(c, "OK", dto.ToScheduleDTOs(schedules))
}

// =============================
// ➕ Create
// =============================
func (ctrl *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	var body dto.CreateScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePrograms.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	schedule := model.ScheduleModel{
		Time:        body.Time,
		Activity:    body.Activity,
		Description: body.Description,
	}
	if err := ctrl.DB.Create(&schedule).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}

	realtime.Publish(model.ScheduleModel{}.TableName(), realtime.EventInsert)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jadwal dibuat", dto.ToScheduleDTO(schedule))
}

// =============================
// 🔄 Update
// =============================
func (ctrl *ScheduleController) UpdateSchedule(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePrograms.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var schedule model.ScheduleModel
	if err := ctrl.DB.First(&schedule, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}

	schedule.Time = body.Time
	schedule.Activity = body.Activity
	schedule.Description = body.Description
	schedule.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(&schedule).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui jadwal")
	}

	realtime.Publish(model.ScheduleModel{}.TableName(), realtime.EventUpdate)
	return helper.Success(c, "Jadwal diperbarui", dto.ToScheduleDTO(schedule))
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.ScheduleModel{}, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus jadwal")
	}

	realtime.Publish(model.ScheduleModel{}.TableName(), realtime.EventDelete)
	return c.SendStatus(fiber.StatusNoContent)
}
