package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/profile/controller"
)

func ProfileUserRoutes(api fiber.Router, db *gorm.DB) {
	profileCtrl := controller.NewProfileController(db)
	api.Get("/profile", profileCtrl.GetPublicProfile) // 🌐 Visi & misi untuk halaman profil

	valueCtrl := controller.NewValueController(db)
	api.Get("/values", valueCtrl.GetPublicValues)

	teacherCtrl := controller.NewTeacherController(db)
	api.Get("/teachers", teacherCtrl.GetPublicTeachers)
}
