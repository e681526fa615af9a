package handlers

import (
	"net/http"

	"tekfix_jobboard/internal/auth"
	"tekfix_jobboard/internal/logger"
	"tekfix_jobboard/internal/middleware"
	"tekfix_jobboard/internal/services"
	"tekfix_jobboard/internal/services/dto"
	"tekfix_jobboard/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewUserHandler(base *BaseHandler, authService services.AuthService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users", h.RequireAuth())
	{
		users.GET("/:id", h.GetUser)
		users.PUT("/:id/profile", h.UpdateProfile)
	}
}

// GetUser godoc
// @Summary Пользователь по ID
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID пользователя"
// @Success 200 {object} models.User
// @Failure 404 {object} apperrors.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.authService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Обновить профиль
// @Description Свой профиль или любой для администратора. Роль не меняется.
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID пользователя"
// @Param request body dto.ProfilePatch true "Изменяемые поля"
// @Success 200 {object} models.User
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse "User not found"
// @Failure 409 {object} apperrors.ErrorResponse "User already exists"
// @Router /users/{id}/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	targetID := c.Param("id")

	if !auth.CanEditProfile(middleware.GetClaims(c), targetID) {
		logger.CtxWarn(c.Request.Context(), "Profile update denied", "target_id", targetID)
		apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
		return
	}

	var patch dto.ProfilePatch
	if !h.BindAndValidate_JSON(c, &patch) {
		return
	}

	user, err := h.authService.UpdateUserProfile(c.Request.Context(), targetID, &patch)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
