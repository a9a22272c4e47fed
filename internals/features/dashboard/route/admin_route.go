package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/dashboard/controller"
)

func DashboardAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)
	api.Get("/dashboard", ctrl.GetStats)
}
