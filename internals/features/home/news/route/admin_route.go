package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/news/controller"
)

func NewsAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsController(db)

	news := api.Group("/news")
	news.Get("/", ctrl.GetAllNews)
	news.Post("/", ctrl.CreateNews)
	news.Put("/:id", ctrl.UpdateNews)
	news.Delete("/:id", ctrl.DeleteNews)
}
