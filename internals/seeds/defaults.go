// Package seeds adalah satu-satunya sumber konten default.
// Dipakai dua arah: seeding baris singleton saat boot, dan fallback
// endpoint publik ketika tabel koleksi masih kosong - supaya situs
// pemasaran selalu menampilkan sesuatu.
package seeds

import (
	"encoding/json"

	"gorm.io/datatypes"

	contactModel "tknurulhasanah_backend/internals/features/home/contact/model"
	galleryModel "tknurulhasanah_backend/internals/features/home/gallery/model"
	heroModel "tknurulhasanah_backend/internals/features/home/hero/model"
	newsModel "tknurulhasanah_backend/internals/features/home/news/model"
	profileModel "tknurulhasanah_backend/internals/features/home/profile/model"
	programModel "tknurulhasanah_backend/internals/features/home/programs/model"
	registrationModel "tknurulhasanah_backend/internals/features/registration/model"
)

func mustJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return datatypes.JSON(b)
}

type ScheduleEntry struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

type RequirementItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func DefaultHeroSlides() []heroModel.HeroSlideModel {
	return []heroModel.HeroSlideModel{
		{
			ID:          1,
			Title:       "Selamat Datang di TK Nurul Hasanah",
			Subtitle:    "Tempat Belajar dan Bermain dengan Ceria!",
			Description: "Mengembangkan potensi anak melalui pembelajaran yang menyenangkan",
			Image:       "https://images.unsplash.com/photo-1587825140708-dfaf72ae4b04?w=1200&h=600&fit=crop",
			Color:       "#FFEFD5",
			Position:    1,
		},
		{
			ID:          2,
			Title:       "Pembelajaran Kreatif",
			Subtitle:    "Belajar Sambil Bermain",
			Description: "Metode pembelajaran yang interaktif dan menyenangkan untuk si kecil",
			Image:       "https://images.unsplash.com/photo-1503454537195-1dcabb73ffb9?w=1200&h=600&fit=crop",
			Color:       "#CDEFFF",
			Position:    2,
		},
		{
			ID:          3,
			Title:       "Fasilitas Lengkap",
			Subtitle:    "Lingkungan yang Aman & Nyaman",
			Description: "Ruang kelas modern dengan fasilitas bermain yang lengkap",
			Image:       "https://images.unsplash.com/photo-1516627145497-ae6968895b74?w=1200&h=600&fit=crop",
			Color:       "#FFD6E8",
			Position:    3,
		},
	}
}

func DefaultProfile() profileModel.ProfileModel {
	return profileModel.ProfileModel{
		ID:   1,
		Visi: "Menjadi lembaga pendidikan anak usia dini yang unggul, islami, dan berkarakter, menghasilkan generasi yang cerdas, kreatif, dan berakhlak mulia.",
		Misi: "Menyelenggarakan pendidikan berkualitas dengan metode pembelajaran yang menyenangkan, mengembangkan potensi anak secara optimal, dan menanamkan nilai-nilai keislaman sejak dini.",
	}
}

func DefaultTeachers() []profileModel.TeacherModel {
	return []profileModel.TeacherModel{
		{
			ID:          1,
			Name:        "Ibu Siti Nurhaliza",
			Position:    "Kepala Sekolah",
			Photo:       "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&h=400&fit=crop",
			Description: "Berpengalaman 15 tahun dalam pendidikan anak usia dini",
		},
		{
			ID:          2,
			Name:        "Ibu Aisyah",
			Position:    "Guru Kelas A",
			Photo:       "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop",
			Description: "Lulusan S1 Pendidikan Anak Usia Dini",
		},
	}
}

func DefaultPrograms() []programModel.ProgramModel {
	return []programModel.ProgramModel{
		{
			ID:          1,
			Title:       "Pembelajaran Dasar",
			Description: "Mengenalkan huruf, angka, dan keterampilan dasar membaca dengan metode yang menyenangkan",
			Features:    mustJSON([]string{"Calistung", "Bahasa Indonesia", "Matematika Dasar"}),
		},
		{
			ID:          2,
			Title:       "Seni & Kreativitas",
			Description: "Mengembangkan kreativitas anak melalui seni lukis, kerajinan tangan, dan aktivitas kreatif",
			Features:    mustJSON([]string{"Melukis", "Kerajinan", "Kolase"}),
		},
		{
			ID:          3,
			Title:       "Musik & Tari",
			Description: "Melatih kepekaan seni melalui musik, menyanyi, dan tarian tradisional maupun modern",
			Features:    mustJSON([]string{"Menyanyi", "Tari", "Alat Musik"}),
		},
	}
}

func DefaultSchedules() []programModel.ScheduleModel {
	return []programModel.ScheduleModel{
		{ID: 1, Time: "07.00 - 07.30", Activity: "Penyambutan & Bermain Bebas", Description: "Siswa disambut dan bermain bebas di playground"},
		{ID: 2, Time: "07.30 - 08.00", Activity: "Circle Time & Doa", Description: "Pembukaan, doa bersama, dan pengenalan tema"},
		{ID: 3, Time: "08.00 - 09.30", Activity: "Kegiatan Inti", Description: "Aktivitas belajar utama sesuai tema harian"},
		{ID: 4, Time: "09.30 - 10.00", Activity: "Snack Time & Istirahat", Description: "Makan snack dan istirahat"},
		{ID: 5, Time: "10.00 - 11.00", Activity: "Kegiatan Lanjutan", Description: "Kegiatan tambahan atau praktik"},
		{ID: 6, Time: "11.00 - 11.30", Activity: "Penutup & Doa", Description: "Review kegiatan hari ini dan doa penutup"},
	}
}

func DefaultWeeklySchedules() []programModel.WeeklyScheduleModel {
	return []programModel.WeeklyScheduleModel{
		{ID: 1, Day: "Senin", Activities: mustJSON([]string{"Upacara", "Pembelajaran Dasar", "Seni"})},
		{ID: 2, Day: "Selasa", Activities: mustJSON([]string{"Olahraga", "Matematika", "Musik"})},
		{ID: 3, Day: "Rabu", Activities: mustJSON([]string{"Bahasa", "Kreativitas", "Bermain"})},
		{ID: 4, Day: "Kamis", Activities: mustJSON([]string{"Sains", "Tari", "Storytelling"})},
		{ID: 5, Day: "Jumat", Activities: mustJSON([]string{"Agama", "Olahraga", "Praktik"})},
	}
}

func DefaultGallery() []galleryModel.GalleryModel {
	return []galleryModel.GalleryModel{
		{ID: 1, Image: "https://images.unsplash.com/photo-1587825140708-dfaf72ae4b04?w=600&h=400&fit=crop", Title: "Kegiatan Belajar", Category: "pembelajaran"},
		{ID: 2, Image: "https://images.unsplash.com/photo-1503454537195-1dcabb73ffb9?w=600&h=400&fit=crop", Title: "Aktivitas Kreatif", Category: "seni"},
		{ID: 3, Image: "https://images.unsplash.com/photo-1516627145497-ae6968895b74?w=600&h=400&fit=crop", Title: "Bermain Bersama", Category: "bermain"},
		{ID: 4, Image: "https://images.unsplash.com/photo-1560087637-bf797bc7796a?w=600&h=400&fit=crop", Title: "Olahraga Pagi", Category: "olahraga"},
		{ID: 5, Image: "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=600&h=400&fit=crop", Title: "Menggambar", Category: "seni"},
		{ID: 6, Image: "https://images.unsplash.com/photo-1503454537195-1dcabb73ffb9?w=600&h=400&fit=crop", Title: "Belajar Angka", Category: "pembelajaran"},
		{ID: 7, Image: "https://images.unsplash.com/photo-1587825140708-dfaf72ae4b04?w=600&h=400&fit=crop", Title: "Field Trip", Category: "outing"},
		{ID: 8, Image: "https://images.unsplash.com/photo-1516627145497-ae6968895b74?w=600&h=400&fit=crop", Title: "Menari Bersama", Category: "seni"},
		{ID: 9, Image: "https://images.unsplash.com/photo-1560087637-bf797bc7796a?w=600&h=400&fit=crop", Title: "Bermain di Taman", Category: "bermain"},
	}
}

func DefaultNews() []newsModel.NewsModel {
	return []newsModel.NewsModel{
		{
			ID:       1,
			Title:    "Penerimaan Siswa Baru Tahun Ajaran 2025/2026",
			Excerpt:  "TK Nurul Hasanah membuka pendaftaran siswa baru untuk tahun ajaran 2025/2026. Dapatkan early bird discount!",
			Date:     "15 Januari 2025",
			Author:   "Admin TK",
			Category: "Pengumuman",
			Image:    "https://images.unsplash.com/photo-1503454537195-1dcabb73ffb9?w=600&h=400&fit=crop",
		},
		{
			ID:       2,
			Title:    "Kegiatan Field Trip ke Kebun Binatang",
			Excerpt:  "Anak-anak TK Nurul Hasanah berkunjung ke kebun binatang untuk belajar tentang berbagai hewan dan habitat mereka.",
			Date:     "10 Januari 2025",
			Author:   "Bu Rina",
			Category: "Kegiatan",
			Image:    "https://images.unsplash.com/photo-1587825140708-dfaf72ae4b04?w=600&h=400&fit=crop",
		},
		{
			ID:       3,
			Title:    "Workshop Parenting: Mendidik Anak di Era Digital",
			Excerpt:  "Mengundang seluruh orang tua untuk mengikuti workshop parenting tentang pendidikan anak di era digital.",
			Date:     "5 Januari 2025",
			Author:   "Admin TK",
			Category: "Event",
			Image:    "https://images.unsplash.com/photo-1516627145497-ae6968895b74?w=600&h=400&fit=crop",
		},
		{
			ID:       4,
			Title:    "Pentas Seni Akhir Semester",
			Excerpt:  "Anak-anak menampilkan berbagai penampilan seni seperti menyanyi, menari, dan drama sebagai penutup semester.",
			Date:     "28 Desember 2024",
			Author:   "Bu Maya",
			Category: "Kegiatan",
			Image:    "https://images.unsplash.com/photo-1560087637-bf797bc7796a?w=600&h=400&fit=crop",
		},
		{
			ID:       5,
			Title:    "Lomba Mewarnai Tingkat TK Se-Jakarta",
			Excerpt:  "Selamat kepada Adik Alif yang meraih juara 1 lomba mewarnai tingkat TK se-Jakarta!",
			Date:     "20 Desember 2024",
			Author:   "Admin TK",
			Category: "Prestasi",
			Image:    "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=600&h=400&fit=crop",
		},
		{
			ID:       6,
			Title:    "Perayaan Hari Guru Nasional",
			Excerpt:  "TK Nurul Hasanah merayakan Hari Guru Nasional dengan berbagai kegiatan menyenangkan bersama guru-guru tercinta.",
			Date:     "25 November 2024",
			Author:   "Bu Dewi",
			Category: "Event",
			Image:    "https://images.unsplash.com/photo-1503454537195-1dcabb73ffb9?w=600&h=400&fit=crop",
		},
	}
}

func DefaultContact() contactModel.ContactModel {
	return contactModel.ContactModel{
		ID:       1,
		Address:  "Jl. Pendidikan No. 123, Jakarta Selatan 12345",
		Phone:    "(021) 1234-5678",
		Email:    "info@tknurulhasanah.sch.id",
		Whatsapp: "https://wa.me/6281234567890",
		MapsURL:  "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3966.2179572994757!2d106.82493931476893!3d-6.229728295498379!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x2e69f3e945e34b9d%3A0x5371bf5486c4b000!2sMonas!5e0!3m2!1sen!2sid!4v1234567890123!5m2!1sen!2sid",
		Schedule: mustJSON([]ScheduleEntry{
			{Day: "Senin - Jumat", Hours: "07.00 - 16.00 WIB"},
			{Day: "Sabtu", Hours: "07.00 - 12.00 WIB"},
			{Day: "Minggu", Hours: "Libur"},
		}),
	}
}

func DefaultFooter() contactModel.FooterModel {
	return contactModel.FooterModel{
		ID:          1,
		Description: "Tempat terbaik untuk tumbuh kembang anak dengan lingkungan yang ceria dan penuh kasih sayang.",
		Address:     "Jl. Pendidikan No. 123, Jakarta Selatan 12345",
		Phone:       "(021) 1234-5678",
		Email:       "info@tknurulhasanah.sch.id",
		Whatsapp:    "https://wa.me/6281234567890",
	}
}

func DefaultRegistrationInfo() registrationModel.RegistrationInfoModel {
	return registrationModel.RegistrationInfoModel{
		ID:       1,
		Title:    "Pendaftaran Siswa Baru",
		Subtitle: "Daftarkan putra-putri Anda sekarang untuk tahun ajaran 2025/2026",
		Requirements: mustJSON([]RequirementItem{
			{Title: "Syarat Pendaftaran", Description: "Usia minimal 4 tahun, fotokopi KK, akta kelahiran"},
		}),
		Fee:    mustJSON(RequirementItem{Title: "Biaya Pendaftaran", Description: "Rp 500.000 (sudah termasuk seragam dan buku)"}),
		Period: mustJSON(RequirementItem{Title: "Waktu Pendaftaran", Description: "Dibuka mulai Januari - Juni 2025"}),
	}
}
