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

	"tknurulhasanah_backend/internals/features/home/gallery/dto"
	"tknurulhasanah_backend/internals/features/home/gallery/model"
	"tknurulhasanah_backend/internals/features/home/gallery/route"
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
	require.NoError(t, db.AutoMigrate(&model.GalleryModel{}))

	app := fiber.New()
	route.GalleryAdminRoutes(app.Group("/api/a"), db)
	route.GalleryUserRoutes(app.Group("/api/public"), db)
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

func TestGallery_AcceptsKnownCategories(t *testing.T) {
	app, _ := newTestApp(t)

	for _, category := range model.GalleryCategories {
		resp := doJSON(t, app, http.MethodPost, "/api/a/gallery/", dto.CreateGalleryRequest{
			Image:    "https://example.com/foto.jpg",
			Title:    "Foto " + category,
			Category: category,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, "kategori %s", category)
	}
}

func TestGallery_RejectsUnknownCategory(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/a/gallery/", dto.CreateGalleryRequest{
		Image:    "https://example.com/foto.jpg",
		Title:    "Kategori ngawur",
		Category: "wisuda",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGallery_PublicFallsBackWhenEmpty(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/public/gallery", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []dto.GalleryDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &items))
	require.NotEmpty(t, items, "galeri kosong harus menampilkan konten default")
}

func TestGallery_InlineImageWithinLimit(t *testing.T) {
	app, _ := newTestApp(t)

	small := bytes.Repeat([]byte("A"), 4096)
	resp := doJSON(t, app, http.MethodPost, "/api/a/gallery/", dto.CreateGalleryRequest{
		Image:    "data:image/jpeg;base64," + string(small),
		Title:    "Foto kecil",
		Category: "seni",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}
