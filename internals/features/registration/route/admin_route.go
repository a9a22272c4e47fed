package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/registration/controller"
)

func RegistrationAdminRoutes(api fiber.Router, db *gorm.DB) {
	regCtrl := controller.NewRegistrationController(db)

	reg := api.Group("/registrations")
	reg.Get("/", regCtrl.GetAllRegistrations)
	reg.Delete("/:id", regCtrl.DeleteRegistration)

	infoCtrl := controller.NewRegistrationInfoController(db)

	info := api.Group("/registration-info")
	info.Get("/", infoCtrl.GetRegistrationInfo)
	info.Put("/", infoCtrl.UpdateRegistrationInfo) // 🔄 Upsert id=1
}
