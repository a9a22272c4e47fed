package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tknurulhasanah_backend/internals/configs"
	"tknurulhasanah_backend/internals/features/users/auth/dto"
	"tknurulhasanah_backend/internals/features/users/auth/model"
	"tknurulhasanah_backend/internals/features/users/auth/route"
)

const (
	testEmail    = "admin@tknurulhasanah.sch.id"
	testPassword = "rahasia-admin-123"
)

type envelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	configs.JWTSecret = "test-secret-jangan-dipakai-produksi"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AdminUserModel{}, &model.TokenBlacklist{}))

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.AdminUserModel{
		Email:        testEmail,
		PasswordHash: string(hash),
	}).Error)

	app := fiber.New()
	route.AuthRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    testEmail,
		Password: testPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(t, out.Token)
	require.Equal(t, testEmail, out.Admin.Email)
	return out.Token
}

func TestLogin_WrongPassword(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    testEmail,
		Password: "password-salah-1",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	app, _ := newTestApp(t)

	wrongPass := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    testEmail,
		Password: "password-salah-1",
	})
	unknown := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email:    "tidakada@example.com",
		Password: "password-salah-1",
	})

	// Pesan sama supaya tidak membocorkan email mana yang terdaftar
	var a, b envelope
	require.NoError(t, json.NewDecoder(wrongPass.Body).Decode(&a))
	require.NoError(t, json.NewDecoder(unknown.Body).Decode(&b))
	require.Equal(t, a.Message, b.Message)
	require.Equal(t, wrongPass.StatusCode, unknown.StatusCode)
}

func TestMe_RequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/auth/me", "token-ngawur", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_FullFlow(t *testing.T) {
	app, db := newTestApp(t)

	token := login(t, app)

	me := doJSON(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, me.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(me.Body).Decode(&env))
	var admin dto.AdminDTO
	require.NoError(t, json.Unmarshal(env.Data, &admin))
	require.Equal(t, testEmail, admin.Email)

	logout := doJSON(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, logout.StatusCode)

	var blacklisted int64
	require.NoError(t, db.Model(&model.TokenBlacklist{}).Count(&blacklisted).Error)
	require.EqualValues(t, 1, blacklisted)

	// Token yang sudah logout ditolak
	meAgain := doJSON(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, meAgain.StatusCode)
}
