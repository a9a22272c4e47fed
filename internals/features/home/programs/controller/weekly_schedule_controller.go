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

type WeeklyScheduleController struct {
	DB *gorm.DB
}

func NewWeeklyScheduleController(db *gorm.DB) *WeeklyScheduleController {
	return &WeeklyScheduleController{DB: db}
}

// =============================
// 📄 Get All
// =============================
func (ctrl *WeeklyScheduleController) GetAllWeeklySchedules(c *fiber.Ctx) error {
	var schedules []model.WeeklyScheduleModel
	if err := ctrl.DB.Order("created_at ASC").Find(&schedules).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal mingguan")
	}
	return helper.Success(c, "OK", dto.ToWeeklyScheduleDTOs(schedules))
}

// =============================
// 🌐 Get All (publik)
// =============================
func (ctrl *WeeklyScheduleController) GetPublicWeeklySchedules(c *fiber.Ctx) error {
	var schedules []model.WeeklyScheduleModel
	if err := ctrl.DB.Order("created_at ASC").Find(&schedules).Error; err != nil || len(schedules) == 0 {
		return helper.Success(c, "OK", dto.ToWeeklyScheduleDTOs(seeds.DefaultWeeklySchedules()))
	}
	return helper.Success(c, "OK", dto.ToWeeklyScheduleDTOs(schedules))
}

// =============================
// ➕ Create
// =============================
func (ctrl *WeeklyScheduleController) CreateWeeklySchedule(c *fiber.Ctx) error {
	var body dto.CreateWeeklyScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePrograms.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	schedule := model.WeeklyScheduleModel{
		Day:        body.Day,
		Activities: dto.FeaturesJSON(body.Activities),
	}
	if err := ctrl.DB.Create(&schedule).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal mingguan")
	}

	realtime.Publish(model.WeeklyScheduleModel{}.TableName(), realtime.EventInsert)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jadwal mingguan dibuat", dto.ToWeeklyScheduleDTO(schedule))
}

// =============================
// 🔄 Update
// =============================
func (ctrl *WeeklyScheduleController) UpdateWeeklySchedule(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateWeeklyScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePrograms.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var schedule model.WeeklyScheduleModel
	if err := ctrl.DB.First(&schedule, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Jadwal mingguan tidak ditemukan")
	}

	schedule.Day = body.Day
	schedule.Activities = dto.FeaturesJSON(body.Activities)
	schedule.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(&schedule).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui jadwal mingguan")
	}

	realtime.Publish(model.WeeklyScheduleModel{}.TableName(), realtime.EventUpdate)
	return helper.Success(c, "Jadwal mingguan diperbarui", dto.ToWeeklyScheduleDTO(schedule))
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *WeeklyScheduleController) DeleteWeeklySchedule(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Delete(&model.WeeklyScheduleModel{}, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus jadwal mingguan")
	}

	realtime.Publish(model.WeeklyScheduleModel{}.TableName(), realtime.EventDelete)
	return c.SendStatus(fiber.StatusNoContent)
}
