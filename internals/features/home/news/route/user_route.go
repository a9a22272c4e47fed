package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/news/controller"
)

func NewsUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsController(db)
	api.Get("/news", ctrl.GetPublicNews)
}
