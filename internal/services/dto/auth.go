package dto

import "tekfix_jobboard/internal/models"

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest - запрос регистрации.
// Пароль принимается, но не хранится: вход всегда по демо-паролю.
type RegisterRequest struct {
	Name     string          `json:"name" validate:"required,max=120"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required"`
	Role     models.UserRole `json:"role" validate:"required,is-register-role"`
	Company  string          `json:"company,omitempty" validate:"required_if=Role employer"`
}

// AuthResponse - пользователь и токен сессии
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}
