package handlers

import (
	"net/http"

	"tekfix_jobboard/internal/auth"
	"tekfix_jobboard/internal/middleware"
	"tekfix_jobboard/internal/services"
	"tekfix_jobboard/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin", h.RequireAuth(), middleware.RequirePermission(auth.PermAdminDashboard))
	{
		admin.GET("/stats", h.GetStats)
		admin.GET("/users", h.SearchUsers)
		admin.GET("/jobs", h.SearchJobs)
	}
}

// GetStats godoc
// @Summary Счетчики панели администратора
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AdminStats
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminService.Overview(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// SearchUsers godoc
// @Summary Поиск пользователей по имени или email
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param q query string false "Строка поиска"
// @Success 200 {array} models.User
// @Router /admin/users [get]
func (h *AdminHandler) SearchUsers(c *gin.Context) {
	var query dto.AdminSearchQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	users, err := h.adminService.SearchUsers(c.Request.Context(), query.Query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// SearchJobs godoc
// @Summary Поиск вакансий по названию или компании
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param q query string false "Строка поиска"
// @Success 200 {array} models.Job
// @Router /admin/jobs [get]
func (h *AdminHandler) SearchJobs(c *gin.Context) {
	var query dto.AdminSearchQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, err := h.adminService.SearchJobs(c.Request.Context(), query.Query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}
