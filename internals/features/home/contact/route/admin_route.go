package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/contact/controller"
)

func ContactAdminRoutes(api fiber.Router, db *gorm.DB) {
	contactCtrl := controller.NewContactController(db)

	contact := api.Group("/contact")
	contact.Get("/", contactCtrl.GetContact)
	contact.Put("/", contactCtrl.UpdateContact) // 🔄 Upsert id=1

	footerCtrl := controller.NewFooterController(db)

	footer := api.Group("/footer")
	footer.Get("/", footerCtrl.GetFooter)
	footer.Put("/", footerCtrl.UpdateFooter) // 🔄 Upsert id=1
}
