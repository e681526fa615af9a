package apperrors

import (
	"net/http"
)

/*
Предопределенные ошибки домена доски вакансий.
Модель ошибок намеренно узкая: "не найдено / конфликт" и "ошибка аутентификации".
*/

// =========================================================================
// Аутентификация
// =========================================================================

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// =========================================================================
// Пользователи
// =========================================================================

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"User already exists",
	http.StatusConflict,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"user",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// =========================================================================
// Вакансии
// =========================================================================

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)
