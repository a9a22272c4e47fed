package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/registration/controller"
	"tknurulhasanah_backend/internals/middlewares"
)

func RegistrationUserRoutes(api fiber.Router, db *gorm.DB) {
	regCtrl := controller.NewRegistrationController(db)
	api.Post("/registrations", middlewares.RegisterRateLimiter(), regCtrl.CreateRegistration)

	infoCtrl := controller.NewRegistrationInfoController(db)
	api.Get("/registration-info", infoCtrl.GetPublicRegistrationInfo)
}
