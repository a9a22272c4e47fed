package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/programs/dto"
	"tknurulhasanah_backend/internals/features/home/programs/model"
	helper "tknurulhasanah_backend/internals/helpers"
	"tknurulhasanah_backend/internals/realtime"
)

// ActivityController melayani tiga tabel kegiatan sekaligus
// (mingguan, bulanan, tahunan) lewat param :type.
type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

var activityTables = map[string]string{
	"weekly":  model.WeeklyActivityModel{}.TableName(),
	"monthly": model.MonthlyActivityModel{}.TableName(),
	"yearly":  model.YearlyActivityModel{}.TableName(),
}

func activityTable(c *fiber.Ctx) (string, bool) {
	table, ok := activityTables[c.Params("type")]
	return table, ok
}

// =============================
// 📄 Get All
// =============================
func (ctrl *ActivityController) GetAllActivities(c *fiber.Ctx) error {
	table, ok := activityTable(c)
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Jenis kegiatan tidak dikenal")
	}

	var activities []model.ActivityFields
	if err := ctrl.DB.Table(table).Order("created_at ASC").Find(&activities).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kegiatan")
	}

	out := make([]dto.ActivityDTO, 0, len(activities))
	for _, a := range activities {
		out = append(out, dto.ToActivityDTO(a))
	}
	return helper.Success(c, "OK", out)
}

// =============================
// 🌐 Get All (publik) - tabel kosong tampil kosong
// =============================
func (ctrl *ActivityController) GetPublicActivities(c *fiber.Ctx) error {
	table, ok := activityTable(c)
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Jenis kegiatan tidak dikenal")
	}

	var activities []model.ActivityFields
	if err := ctrl.DB.Table(table).Order("created_at ASC").Find(&activities).Error; err != nil {
		return helper.Success(c, "OK", []dto.ActivityDTO{})
	}

	out := make([]dto.ActivityDTO, 0, len(activities))
	for _, a := range activities {
		out = append(out, dto.ToActivityDTO(a))
	}
	return helper.Success(c, "OK", out)
}

// =============================
// ➕ Create
// =============================
func (ctrl *ActivityController) CreateActivity(c *fiber.Ctx) error {
	table, ok := activityTable(c)
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Jenis kegiatan tidak dikenal")
	}

	var body dto.CreateActivityRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePrograms.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	activity := model.ActivityFields{
		Title:       body.Title,
		Description: body.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := ctrl.DB.Table(table).Create(&activity).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kegiatan")
	}

	realtime.Publish(table, realtime.EventInsert)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kegiatan dibuat", dto.ToActivityDTO(activity))
}

// =============================
// 🔄 Update
// =============================
func (ctrl *ActivityController) UpdateActivity(c *fiber.Ctx) error {
	table, ok := activityTable(c)
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Jenis kegiatan tidak dikenal")
	}
	id := c.Params("id")

	var body dto.UpdateActivityRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePrograms.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var activity model.ActivityFields
	if err := ctrl.DB.Table(table).First(&activity, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
	}

	activity.Title = body.Title
	activity.Description = body.Description
	activity.UpdatedAt = time.Now()

	// Updates via map: string kosong ikut tersimpan, tidak di-skip
	// seperti field zero-value pada Updates berbasis struct
	updates := map[string]interface{}{
		"title":       activity.Title,
		"description": activity.Description,
		"updated_at":  activity.UpdatedAt,
	}
	if err := ctrl.DB.Table(table).Where("id = ?", activity.ID).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui kegiatan")
	}

	realtime.Publish(table, realtime.EventUpdate)
	return helper.Success(c, "Kegiatan diperbarui", dto.ToActivityDTO(activity))
}

// =============================
// 🗑️ Delete
// =============================
func (ctrl *ActivityController) DeleteActivity(c *fiber.Ctx) error {
	table, ok := activityTable(c)
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Jenis kegiatan tidak dikenal")
	}
	id := c.Params("id")

	if err := ctrl.DB.Table(table).Where("id = ?", id).Delete(&model.ActivityFields{}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kegiatan")
	}

	realtime.Publish(table, realtime.EventDelete)
	return c.SendStatus(fiber.StatusNoContent)
}
