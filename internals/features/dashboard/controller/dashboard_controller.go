package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	galleryModel "tknurulhasanah_backend/internals/features/home/gallery/model"
	newsModel "tknurulhasanah_backend/internals/features/home/news/model"
	regDto "tknurulhasanah_backend/internals/features/registration/dto"
	regModel "tknurulhasanah_backend/internals/features/registration/model"
	helper "tknurulhasanah_backend/internals/helpers"
)

// DashboardController merangkum angka-angka untuk beranda admin.
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type dashboardStats struct {
	TotalRegistrations  int64                    `json:"total_registrations"`
	TotalNews           int64                    `json:"total_news"`
	TotalGallery        int64                    `json:"total_gallery"`
	RecentRegistrations []regDto.RegistrationDTO `json:"recent_registrations"`
}

// =============================
// 📊 Ringkasan dashboard
// =============================
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	var stats dashboardStats

	if err := ctrl.DB.Model(&regModel.RegistrationModel{}).Count(&stats.TotalRegistrations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil ringkasan")
	}
	if err := ctrl.DB.Model(&newsModel.NewsModel{}).Count(&stats.TotalNews).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil ringkasan")
	}
	if err := ctrl.DB.Model(&galleryModel.GalleryModel{}).Count(&stats.TotalGallery).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil ringkasan")
	}

	var recent []regModel.RegistrationModel
	if err := ctrl.DB.Order("submitted_at DESC").Limit(5).Find(&recent).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil ringkasan")
	}
	stats.RecentRegistrations = regDto.ToRegistrationDTOs(recent)

	return helper.Success(c, "OK", stats)
}
