package database

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/configs"
	contactModel "tknurulhasanah_backend/internals/features/home/contact/model"
	galleryModel "tknurulhasanah_backend/internals/features/home/gallery/model"
	heroModel "tknurulhasanah_backend/internals/features/home/hero/model"
	newsModel "tknurulhasanah_backend/internals/features/home/news/model"
	profileModel "tknurulhasanah_backend/internals/features/home/profile/model"
	programModel "tknurulhasanah_backend/internals/features/home/programs/model"
	registrationModel "tknurulhasanah_backend/internals/features/registration/model"
	authModel "tknurulhasanah_backend/internals/features/users/auth/model"
	"tknurulhasanah_backend/internals/seeds"
)

// Migrate menjalankan AutoMigrate semua tabel konten lalu mengisi
// baris singleton (id=1) dan akun admin bila belum ada.
func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&heroModel.HeroSlideModel{},
		&profileModel.ProfileModel{},
		&profileModel.ValueModel{},
		&profileModel.TeacherModel{},
		&programModel.ProgramModel{},
		&programModel.ScheduleModel{},
		&programModel.WeeklyScheduleModel{},
		&programModel.WeeklyActivityModel{},
		&programModel.MonthlyActivityModel{},
		&programModel.YearlyActivityModel{},
		&galleryModel.GalleryModel{},
		&newsModel.NewsModel{},
		&registrationModel.RegistrationModel{},
		&registrationModel.RegistrationInfoModel{},
		&contactModel.ContactModel{},
		&contactModel.FooterModel{},
		&authModel.AdminUserModel{},
		&authModel.TokenBlacklist{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi tabel: %v", err)
	}
	log.Println("✅ Migrasi tabel selesai.")

	SeedSingletons(db)
	SeedAdminUser(db)
}

// SeedSingletons membuat baris id=1 untuk tiap entitas singleton bila
// belum ada. Tabel koleksi sengaja TIDAK di-seed: default-nya hanya
// muncul lewat fallback endpoint publik saat tabel kosong.
func SeedSingletons(db *gorm.DB) {
	profile := seeds.DefaultProfile()
	if err := db.FirstOrCreate(&profile, "id = ?", 1).Error; err != nil {
		log.Printf("[SEED ERROR] profile: %v", err)
	}

	contact := seeds.DefaultContact()
	if err := db.FirstOrCreate(&contact, "id = ?", 1).Error; err != nil {
		log.Printf("[SEED ERROR] contact: %v", err)
	}

	footer := seeds.DefaultFooter()
	if err := db.FirstOrCreate(&footer, "id = ?", 1).Error; err != nil {
		log.Printf("[SEED ERROR] footer: %v", err)
	}

	regInfo := seeds.DefaultRegistrationInfo()
	if err := db.FirstOrCreate(&regInfo, "id = ?", 1).Error; err != nil {
		log.Printf("[SEED ERROR] registration_info: %v", err)
	}
}

// SeedAdminUser membuat akun admin dari ENV bila belum terdaftar.
func SeedAdminUser(db *gorm.DB) {
	if configs.AdminEmail == "" || configs.AdminPassword == "" {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD kosong, lewati seeding admin")
		return
	}

	var existing authModel.AdminUserModel
	err := db.First(&existing, "email = ?", configs.AdminEmail).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[SEED ERROR] cek admin: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(configs.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED ERROR] hash password admin: %v", err)
		return
	}

	admin := authModel.AdminUserModel{
		Email:        configs.AdminEmail,
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[SEED ERROR] buat admin: %v", err)
		return
	}
	log.Printf("✅ Akun admin %s dibuat.", configs.AdminEmail)
}
