package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tknurulhasanah_backend/internals/features/home/hero/dto"
	"tknurulhasanah_backend/internals/features/home/hero/model"
	"tknurulhasanah_backend/internals/features/home/hero/route"
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
	require.NoError(t, db.AutoMigrate(&model.HeroSlideModel{}))

	app := fiber.New()
	route.HeroAdminRoutes(app.Group("/api/a"), db)
	route.HeroUserRoutes(app.Group("/api/public"), db)
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

func TestHeroSlides_OrderedByPosition(t *testing.T) {
	app, _ := newTestApp(t)

	for _, pos := range []int{3, 1, 2} {
		resp := doJSON(t, app, http.MethodPost, "/api/a/hero-slides/", dto.CreateHeroSlideRequest{
			Title:    fmt.Sprintf("Slide posisi %d", pos),
			Position: pos,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/a/hero-slides/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var slides []dto.HeroSlideDTO
	require.NoError(t, json.Unmarshal(env.Data, &slides))
	require.Len(t, slides, 3)
	require.Equal(t, []int{1, 2, 3}, []int{slides[0].Position, slides[1].Position, slides[2].Position})
}

func TestHeroSlides_RoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	created := doJSON(t, app, http.MethodPost, "/api/a/hero-slides/", dto.CreateHeroSlideRequest{
		Title:       "Selamat Datang",
		Subtitle:    "Tempat Belajar dan Bermain",
		Description: "Deskripsi slide",
		Image:       "https://example.com/hero.jpg",
		Color:       "#FFEFD5",
		Position:    1,
	})
	require.Equal(t, http.StatusCreated, created.StatusCode)

	var slide dto.HeroSlideDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, created).Data, &slide))
	require.NotZero(t, slide.ID)

	updated := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/a/hero-slides/%d", slide.ID), dto.UpdateHeroSlideRequest{
		Title:    "Judul Baru",
		Position: 5,
	})
	require.Equal(t, http.StatusOK, updated.StatusCode)

	var after dto.HeroSlideDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, updated).Data, &after))
	require.Equal(t, "Judul Baru", after.Title)
	require.Equal(t, 5, after.Position)
}

func TestHeroSlides_DeleteIsFinal(t *testing.T) {
	app, db := newTestApp(t)

	created := doJSON(t, app, http.MethodPost, "/api/a/hero-slides/", dto.CreateHeroSlideRequest{
		Title:    "Slide sementara",
		Position: 1,
	})
	var slide dto.HeroSlideDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, created).Data, &slide))

	resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/a/hero-slides/%d", slide.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.HeroSlideModel{}).Count(&count).Error)
	require.Zero(t, count)

	// Hapus ulang id yang sama tetap 204
	again := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/a/hero-slides/%d", slide.ID), nil)
	require.Equal(t, http.StatusNoContent, again.StatusCode)
}

func TestHeroSlides_PublicFallsBackToDefaults(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/public/hero-slides/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Tabel kosong harus mengembalikan dataset default apa adanya
	var slides []dto.HeroSlideDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &slides))

	defaults := seeds.DefaultHeroSlides()
	require.Len(t, slides, len(defaults))
	for i, d := range defaults {
		require.Equal(t, d.ID, slides[i].ID)
		require.Equal(t, d.Title, slides[i].Title)
		require.Equal(t, d.Subtitle, slides[i].Subtitle)
		require.Equal(t, d.Description, slides[i].Description)
		require.Equal(t, d.Image, slides[i].Image)
		require.Equal(t, d.Color, slides[i].Color)
		require.Equal(t, d.Position, slides[i].Position)
	}

	// Setelah ada isi, konten default tidak dipakai lagi
	created := doJSON(t, app, http.MethodPost, "/api/a/hero-slides/", dto.CreateHeroSlideRequest{
		Title:    "Satu-satunya slide",
		Position: 1,
	})
	require.Equal(t, http.StatusCreated, created.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/public/hero-slides/", nil)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &slides))
	require.Len(t, slides, 1)
	require.Equal(t, "Satu-satunya slide", slides[0].Title)
}

func TestHeroSlides_RejectsOversizedImage(t *testing.T) {
	app, _ := newTestApp(t)

	// base64 4/3 dari 2MiB+ → hasil decode melebihi batas
	big := bytes.Repeat([]byte("A"), 3*1024*1024)
	resp := doJSON(t, app, http.MethodPost, "/api/a/hero-slides/", dto.CreateHeroSlideRequest{
		Title:    "Gambar kebesaran",
		Image:    "data:image/png;base64," + string(big),
		Position: 1,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
