package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/contact/controller"
)

func ContactUserRoutes(api fiber.Router, db *gorm.DB) {
	contactCtrl := controller.NewContactController(db)
	api.Get("/contact", contactCtrl.GetPublicContact)

	footerCtrl := controller.NewFooterController(db)
	api.Get("/footer", footerCtrl.GetPublicFooter)
}
