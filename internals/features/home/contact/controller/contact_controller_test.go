package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tknurulhasanah_backend/internals/features/home/contact/dto"
	"tknurulhasanah_backend/internals/features/home/contact/model"
	"tknurulhasanah_backend/internals/features/home/contact/route"
	"tknurulhasanah_backend/internals/seeds"
)

type envelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ContactModel{}, &model.FooterModel{}))

	app := fiber.New()
	route.ContactAdminRoutes(app.Group("/api/a"), db)
	route.ContactUserRoutes(app.Group("/api/public"), db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestContact_UpsertKeepsSingleRow(t *testing.T) {
	app, db := newTestApp(t)

	body := dto.UpdateContactRequest{
		Address:  "Jl. Kenanga Raya No. 5, Medan",
		Phone:    "061-1234567",
		Whatsapp: "https://wa.me/6281234567890?text=Halo%20Admin",
		Email:    "info@tknurulhasanah.sch.id",
		Schedule: []dto.ScheduleItem{
			{Day: "Senin - Jumat", Hours: "07.00 - 12.00"},
			{Day: "Sabtu", Hours: "07.00 - 10.00"},
		},
	}

	for i := 0; i < 3; i++ {
		resp := doJSON(t, app, http.MethodPut, "/api/a/contact/", body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var count int64
	require.NoError(t, db.Model(&model.ContactModel{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestContact_WhatsappURLStoredVerbatim(t *testing.T) {
	app, _ := newTestApp(t)

	waURL := "https://wa.me/6281234567890?text=Assalamualaikum%2C%20saya%20ingin%20bertanya"
	resp := doJSON(t, app, http.MethodPut, "/api/a/contact/", dto.UpdateContactRequest{Whatsapp: waURL})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	pub := doJSON(t, app, http.MethodGet, "/api/public/contact", nil)
	var contact dto.ContactDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, pub).Data, &contact))
	require.Equal(t, waURL, contact.Whatsapp, "URL whatsapp disimpan apa adanya, tanpa normalisasi")
}

func TestContact_PublicFallsBackToDefaults(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/public/contact", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Tabel kosong harus mengembalikan dataset default apa adanya
	var contact dto.ContactDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &contact))

	want := dto.ToContactDTO(seeds.DefaultContact())
	require.Equal(t, want.Address, contact.Address)
	require.Equal(t, want.Phone, contact.Phone)
	require.Equal(t, want.Whatsapp, contact.Whatsapp)
	require.Equal(t, want.Email, contact.Email)
	require.Equal(t, want.Facebook, contact.Facebook)
	require.Equal(t, want.Instagram, contact.Instagram)
	require.Equal(t, want.Tiktok, contact.Tiktok)
	require.Equal(t, want.MapsURL, contact.MapsURL)
	require.Equal(t, want.Schedule, contact.Schedule)
}

func TestFooter_UpsertAndPublicRead(t *testing.T) {
	app, db := newTestApp(t)

	body := dto.UpdateFooterRequest{
		Description: "TK Nurul Hasanah, tempat anak tumbuh ceria.",
		Copyright:   "© 2025 TK Nurul Hasanah",
		Email:       "info@tknurulhasanah.sch.id",
	}
	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, http.MethodPut, "/api/a/footer/", body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var count int64
	require.NoError(t, db.Model(&model.FooterModel{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	pub := doJSON(t, app, http.MethodGet, "/api/public/footer", nil)
	var footer dto.FooterDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, pub).Data, &footer))
	require.Equal(t, "© 2025 TK Nurul Hasanah", footer.Copyright)
}
