package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/profile/controller"
)

func ProfileAdminRoutes(api fiber.Router, db *gorm.DB) {
	profileCtrl := controller.NewProfileController(db)

	profile := api.Group("/profile")
	profile.Get("/", profileCtrl.GetProfile)    // 📄 Visi & misi
	profile.Put("/", profileCtrl.UpdateProfile) // 🔄 Simpan visi & misi (upsert id=1)

	valueCtrl := controller.NewValueController(db)

	value := api.Group("/values")
	value.Get("/", valueCtrl.GetAllValues)
	value.Post("/", valueCtrl.CreateValue)
	value.Put("/:id", valueCtrl.UpdateValue)
	value.Delete("/:id", valueCtrl.DeleteValue)

	teacherCtrl := controller.NewTeacherController(db)

	teacher := api.Group("/teachers")
	teacher.Get("/", teacherCtrl.GetAllTeachers)
	teacher.Post("/", teacherCtrl.CreateTeacher)
	teacher.Put("/:id", teacherCtrl.UpdateTeacher)
	teacher.Delete("/:id", teacherCtrl.DeleteTeacher)
}
