package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/gallery/controller"
)

func GalleryUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGalleryController(db)
	api.Get("/gallery", ctrl.GetPublicGallery)
}
