package dto

// ============================
// Request DTO
// ============================

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ============================
// Response DTO
// ============================

type LoginResponse struct {
	Token string   `json:"token"`
	Admin AdminDTO `json:"admin"`
}

type AdminDTO struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}
