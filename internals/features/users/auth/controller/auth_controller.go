package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tknurulhasanah_backend/internals/configs"
	"tknurulhasanah_backend/internals/features/users/auth/dto"
	"tknurulhasanah_backend/internals/features/users/auth/model"
	helper "tknurulhasanah_backend/internals/helpers"
	authmw "tknurulhasanah_backend/internals/middlewares/auth"
)

var validateAuth = validator.New()

// Masa berlaku token admin.
const TokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// 🔑 Login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var admin model.AdminUserModel
	if err := ctrl.DB.First(&admin, "email = ?", body.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Println("[ERROR] DB error saat login:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(body.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   float64(admin.ID),
		"email": admin.Email,
		"role":  "admin",
		"jti":   uuid.New().String(),
		"iat":   now.Unix(),
		"exp":   now.Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Println("[ERROR] Gagal sign token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		Token: signed,
		Admin: dto.AdminDTO{ID: admin.ID, Email: admin.Email},
	})
}

// =============================
// 🚪 Logout (blacklist token sampai kedaluwarsa alami)
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, ok := c.Locals("token_string").(string)
	if !ok || tokenString == "" {
		extracted, err := authmw.ExtractToken(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - Missing token")
		}
		tokenString = extracted
	}

	expiredAt := time.Now().Add(TokenTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := model.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		log.Println("[ERROR] Gagal blacklist token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	return helper.Success(c, "Logout berhasil", nil)
}

// =============================
// 👤 Me
// =============================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	adminID, ok := c.Locals("admin_id").(uint)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var admin model.AdminUserModel
	if err := ctrl.DB.First(&admin, "id = ?", adminID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Admin tidak ditemukan")
	}

	return helper.Success(c, "OK", dto.AdminDTO{ID: admin.ID, Email: admin.Email})
}
