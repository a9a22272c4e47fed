package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/features/home/hero/controller"
)

func HeroUserRoutes(api fiber.Router, db *gorm.DB) {
	heroCtrl := controller.NewHeroSlideController(db)

	hero := api.Group("/hero-slides")
	hero.Get("/", heroCtrl.GetPublicHeroSlides) // 🎡 Slide carousel beranda
}
