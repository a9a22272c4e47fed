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

	"tknurulhasanah_backend/internals/features/home/programs/dto"
	"tknurulhasanah_backend/internals/features/home/programs/model"
	"tknurulhasanah_backend/internals/features/home/programs/route"
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
	require.NoError(t, db.AutoMigrate(
		&model.ProgramModel{},
		&model.ScheduleModel{},
		&model.WeeklyScheduleModel{},
		&model.WeeklyActivityModel{},
		&model.MonthlyActivityModel{},
		&model.YearlyActivityModel{},
	))

	app := fiber.New()
	route.ProgramsAdminRoutes(app.Group("/api/a"), db)
	route.ProgramsUserRoutes(app.Group("/api/public"), db)
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

func TestProgram_FeaturesRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	features := []string{"Membaca dan menulis", "Berhitung dasar", "Hafalan surat pendek"}
	created := doJSON(t, app, http.MethodPost, "/api/a/programs/", dto.CreateProgramRequest{
		Title:       "Kelas B (5-6 tahun)",
		Description: "Persiapan masuk SD",
		Features:    features,
	})
	require.Equal(t, http.StatusCreated, created.StatusCode)

	var program dto.ProgramDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, created).Data, &program))
	require.Equal(t, features, program.Features)

	// Fitur nil disimpan sebagai daftar kosong, bukan null
	empty := doJSON(t, app, http.MethodPost, "/api/a/programs/", dto.CreateProgramRequest{
		Title: "Kelas tanpa fitur",
	})
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, empty).Data, &program))
	require.NotNil(t, program.Features)
	require.Empty(t, program.Features)
}

func TestWeeklySchedule_ActivitiesRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	created := doJSON(t, app, http.MethodPost, "/api/a/weekly-schedules/", dto.CreateWeeklyScheduleRequest{
		Day:        "Senin",
		Activities: []string{"Upacara", "Pembelajaran Dasar", "Seni"},
	})
	require.Equal(t, http.StatusCreated, created.StatusCode)

	resp := doJSON(t, app, http.MethodGet, "/api/public/weekly-schedules", nil)
	var schedules []dto.WeeklyScheduleDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &schedules))
	require.Len(t, schedules, 1)
	require.Equal(t, []string{"Upacara", "Pembelajaran Dasar", "Seni"}, schedules[0].Activities)
}

func TestActivities_TypeDispatch(t *testing.T) {
	app, db := newTestApp(t)

	for _, typ := range []string{"weekly", "monthly", "yearly"} {
		resp := doJSON(t, app, http.MethodPost, "/api/a/activities/"+typ+"/", dto.CreateActivityRequest{
			Title: "Kegiatan " + typ,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, "type %s", typ)
	}

	// Masing-masing masuk ke tabelnya sendiri
	var weekly, monthly, yearly int64
	require.NoError(t, db.Model(&model.WeeklyActivityModel{}).Count(&weekly).Error)
	require.NoError(t, db.Model(&model.MonthlyActivityModel{}).Count(&monthly).Error)
	require.NoError(t, db.Model(&model.YearlyActivityModel{}).Count(&yearly).Error)
	require.EqualValues(t, 1, weekly)
	require.EqualValues(t, 1, monthly)
	require.EqualValues(t, 1, yearly)

	resp := doJSON(t, app, http.MethodGet, "/api/public/activities/monthly", nil)
	var activities []dto.ActivityDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &activities))
	require.Len(t, activities, 1)
	require.Equal(t, "Kegiatan monthly", activities[0].Title)
}

func TestActivities_UpdateCanClearDescription(t *testing.T) {
	app, db := newTestApp(t)

	created := doJSON(t, app, http.MethodPost, "/api/a/activities/weekly/", dto.CreateActivityRequest{
		Title:       "Senam Pagi",
		Description: "Senam pagi bersama",
	})
	require.Equal(t, http.StatusCreated, created.StatusCode)

	var activity dto.ActivityDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, created).Data, &activity))

	// Kosongkan deskripsi: baris tersimpan harus ikut kosong,
	// bukan hanya response-nya
	updated := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/a/activities/weekly/%d", activity.ID), dto.UpdateActivityRequest{
		Title: "Senam Pagi",
	})
	require.Equal(t, http.StatusOK, updated.StatusCode)

	var resp dto.ActivityDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, updated).Data, &resp))
	require.Empty(t, resp.Description)

	var stored model.WeeklyActivityModel
	require.NoError(t, db.First(&stored, "id = ?", activity.ID).Error)
	require.Equal(t, resp.Description, stored.Description)
}

func TestActivities_UnknownTypeRejected(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/a/activities/daily/", dto.CreateActivityRequest{
		Title: "Tidak valid",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSchedule_KeepsInputOrder(t *testing.T) {
	app, _ := newTestApp(t)

	// Sengaja dimasukkan tidak urut jam: tampilan mengikuti urutan input
	rows := []dto.CreateScheduleRequest{
		{Time: "09.30 - 10.00", Activity: "Istirahat & Makan Bersama"},
		{Time: "07.00 - 07.30", Activity: "Penyambutan"},
	}
	for _, r := range rows {
		resp := doJSON(t, app, http.MethodPost, "/api/a/schedules/", r)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/public/schedules", nil)
	var schedules []dto.ScheduleDTO
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &schedules))
	require.Len(t, schedules, 2)
	require.Equal(t, "09.30 - 10.00", schedules[0].Time)
	require.Equal(t, "07.00 - 07.30", schedules[1].Time)
}
