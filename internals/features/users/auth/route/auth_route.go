package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/users/auth/controller"
	"tknurulhasanah_backend/internals/middlewares"
	authmw "tknurulhasanah_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login) // 🔑 Login admin
	api.Post("/logout", authmw.AuthMiddleware(db), authCtrl.Logout)    // 🚪 Logout (blacklist token)
	api.Get("/me", authmw.AuthMiddleware(db), authCtrl.Me)             // 👤 Identitas admin aktif
}
