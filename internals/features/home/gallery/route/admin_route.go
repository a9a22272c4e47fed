package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/gallery/controller"
)

func GalleryAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGalleryController(db)

	gallery := api.Group("/gallery")
	gallery.Get("/", ctrl.GetAllGallery)
	gallery.Post("/", ctrl.CreateGallery)
	gallery.Put("/:id", ctrl.UpdateGallery)
	gallery.Delete("/:id", ctrl.DeleteGallery)
}
