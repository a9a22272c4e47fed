package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "tknurulhasanah_backend/internals/features/dashboard/route"
	contactRoute "tknurulhasanah_backend/internals/features/home/contact/route"
	galleryRoute "tknurulhasanah_backend/internals/features/home/gallery/route"
	heroRoute "tknurulhasanah_backend/internals/features/home/hero/route"
	newsRoute "tknurulhasanah_backend/internals/features/home/news/route"
	profileRoute "tknurulhasanah_backend/internals/features/home/profile/route"
	programsRoute "tknurulhasanah_backend/internals/features/home/programs/route"
	registrationRoute "tknurulhasanah_backend/internals/features/registration/route"
	authRoute "tknurulhasanah_backend/internals/features/users/auth/route"
	authmw "tknurulhasanah_backend/internals/middlewares/auth"
	"tknurulhasanah_backend/internals/realtime"
)

// SetupRoutes merangkai seluruh endpoint:
//   - /api/auth      login/logout/me
//   - /api/public/*  konten situs pemasaran, tanpa autentikasi
//   - /api/a/*       panel admin, dilindungi JWT
//   - /ws            umpan perubahan konten via WebSocket
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)
	authRoute.AuthRoutes(app, db)

	// =============================
	// 🌐 Publik
	// =============================
	public := app.Group("/api/public")
	heroRoute.HeroUserRoutes(public, db)
	profileRoute.ProfileUserRoutes(public, db)
	programsRoute.ProgramsUserRoutes(public, db)
	galleryRoute.GalleryUserRoutes(public, db)
	newsRoute.NewsUserRoutes(public, db)
	contactRoute.ContactUserRoutes(public, db)
	registrationRoute.RegistrationUserRoutes(public, db)

	// =============================
	// 🔐 Admin
	// =============================
	admin := app.Group("/api/a", authmw.AuthMiddleware(db))
	dashboardRoute.DashboardAdminRoutes(admin, db)
	heroRoute.HeroAdminRoutes(admin, db)
	profileRoute.ProfileAdminRoutes(admin, db)
	programsRoute.ProgramsAdminRoutes(admin, db)
	galleryRoute.GalleryAdminRoutes(admin, db)
	newsRoute.NewsAdminRoutes(admin, db)
	contactRoute.ContactAdminRoutes(admin, db)
	registrationRoute.RegistrationAdminRoutes(admin, db)

	// =============================
	// 🔔 Realtime
	// =============================
	realtime.RegisterRoutes(app)
}
