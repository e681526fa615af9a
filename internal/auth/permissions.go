package auth

import "tekfix_jobboard/internal/models"

// Разрешения по ролям
const (
	PermJobsRead       = "jobs:read"
	PermJobsWrite      = "jobs:write"
	PermJobsApply      = "jobs:apply"
	PermUsersRead      = "users:read"
	PermUsersWrite     = "users:write"
	PermProfileWrite   = "profile:write:self"
	PermAdminDashboard = "system:admin"
)

var Permissions = map[models.UserRole][]string{
	models.UserRoleAdmin: {
		PermJobsRead,
		PermJobsWrite,
		PermUsersRead,
		PermUsersWrite,
		PermProfileWrite,
		PermAdminDashboard,
	},
	models.UserRoleEmployer: {
		PermJobsRead,
		PermJobsWrite,
		PermUsersRead,
		PermProfileWrite,
	},
	models.UserRoleSeeker: {
		PermJobsRead,
		PermJobsApply,
		PermUsersRead,
		PermProfileWrite,
	},
}

// HasPermission проверяет есть ли у роли указанное разрешение
func HasPermission(role models.UserRole, permission string) bool {
	for _, p := range Permissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// CanPerformAction проверяет может ли пользователь выполнить действие
func CanPerformAction(claims *Claims, permission string) bool {
	return claims != nil && HasPermission(claims.Role, permission)
}

// IsAdmin проверяет является ли пользователь администратором
func IsAdmin(claims *Claims) bool {
	return claims != nil && claims.Role == models.UserRoleAdmin
}

// CanEditProfile - свой профиль или любой для администратора
func CanEditProfile(claims *Claims, userID string) bool {
	if claims == nil {
		return false
	}
	return claims.UserID == userID || IsAdmin(claims)
}
