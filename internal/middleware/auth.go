package middleware

import (
	"strings"

	"tekfix_jobboard/internal/auth"
	"tekfix_jobboard/internal/logger"
	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/pkg/apperrors"
	"tekfix_jobboard/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - проверка Bearer токена через кодек из конфига
func AuthMiddleware(codec auth.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := codec.Parse(tokenStr)
		if err != nil {
			if apperrors.Is(err, auth.ErrTokenExpired) {
				apperrors.HandleError(c, apperrors.New(apperrors.CodeTokenExpired, "auth", "Token expired", apperrors.ErrInvalidToken.HTTPCode))
				return
			}
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		// Сохраняем claims в контекст
		c.Set(contextkeys.UserIDKey, claims.UserID)
		c.Set(contextkeys.RoleKey, claims.Role)
		c.Set(contextkeys.ClaimsKey, claims)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// RoleMiddleware - middleware ограничения по одной роли
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return RequireRoles(requiredRole)
}

// RequirePermission пропускает роли, у которых есть permission
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if !auth.CanPerformAction(claims, permission) {
			role := models.UserRole("")
			if claims != nil {
				role = claims.Role
			}
			logger.CtxWarn(c.Request.Context(), "Access denied: missing permission", "role", role, "permission", permission)
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

// RequireRoles - middleware для проверки нескольких возможных ролей
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: no role"))
			return
		}

		if !roleSet[role] {
			logger.CtxWarn(c.Request.Context(), "Access denied: insufficient role", "role", role, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(contextkeys.UserIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}

// GetRole извлекает роль из контекста
func GetRole(c *gin.Context) (models.UserRole, bool) {
	roleVal, exists := c.Get(contextkeys.RoleKey)
	if !exists {
		return "", false
	}

	switch role := roleVal.(type) {
	case models.UserRole:
		return role, true
	case string:
		return models.UserRole(role), true
	default:
		return "", false
	}
}

// GetClaims возвращает claims текущего запроса или nil
func GetClaims(c *gin.Context) *auth.Claims {
	val, exists := c.Get(contextkeys.ClaimsKey)
	if !exists {
		return nil
	}
	claims, _ := val.(*auth.Claims)
	return claims
}
