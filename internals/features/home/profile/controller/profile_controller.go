package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/profile/dto"
	"tknurulhasanah_backend/internals/features/home/profile/model"
	helper "tknurulhasanah_backend/internals/helpers"
	"tknurulhasanah_backend/internals/realtime"
	"tknurulhasanah_backend/internals/seeds"
)

var validateProfile = validator.New()

// ProfileController mengelola baris tunggal visi & misi (id=1).
type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// =============================
// 📄 Get (admin)
// =============================
func (ctrl *ProfileController) GetProfile(c *fiber.Ctx) error {
	var profile model.ProfileModel
	if err := ctrl.DB.First(&profile, "id = ?", 1).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Profil belum tersedia")
	}
	return helper.Success(c, "OK", dto.ToProfileDTO(profile))
}

// =============================
// 🌐 Get (publik) - fallback ke default
// =============================
func (ctrl *ProfileController) GetPublicProfile(c *fiber.Ctx) error {
	var profile model.ProfileModel
	if err := ctrl.DB.First(&profile, "id = ?", 1).Error; err != nil {
		return helper.Success(c, "OK", dto.ToProfileDTO(seeds.DefaultProfile()))
	}
	return helper.Success(c, "OK", dto.ToProfileDTO(profile))
}

// =============================
// 🔄 Update (upsert id=1, save berulang tidak pernah duplikat)
// =============================
func (ctrl *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProfile.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var profile model.ProfileModel
	if err := ctrl.DB.First(&profile, "id = ?", 1).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan profil")
		}
		profile = model.ProfileModel{ID: 1}
	}

	profile.Visi = body.Visi
	profile.Misi = body.Misi
	profile.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(&profile).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan profil")
	}

	realtime.Publish(model.ProfileModel{}.TableName(), realtime.EventUpdate)
	return helper.Success(c, "Profil disimpan", dto.ToProfileDTO(profile))
}
