package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/hero/controller"
)

func HeroAdminRoutes(api fiber.Router, db *gorm.DB) {
	heroCtrl := controller.NewHeroSlideController(db)

	hero := api.Group("/hero-slides")
	hero.Get("/", heroCtrl.GetAllHeroSlides)       // 📄 Semua slide (urut posisi)
	hero.Post("/", heroCtrl.CreateHeroSlide)       // ➕ Buat slide baru
	hero.Put("/:id", heroCtrl.UpdateHeroSlide)     // 🔄 Perbarui slide
	hero.Delete("/:id", heroCtrl.DeleteHeroSlide)  // 🗑️ Hapus slide
}
