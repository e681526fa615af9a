package handlers

import (
	"net/http"

	"tekfix_jobboard/internal/algorithms"
	"tekfix_jobboard/internal/auth"
	"tekfix_jobboard/internal/middleware"
	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/internal/services"
	"tekfix_jobboard/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)

		// Владение вакансией не проверяется: править может любой работодатель или админ
		writers := jobs.Group("", h.RequireAuth(), middleware.RequirePermission(auth.PermJobsWrite))
		writers.POST("", h.CreateJob)
		writers.PUT("/:id", h.UpdateJob)
		writers.DELETE("/:id", h.DeleteJob)
	}

	employer := rg.Group("/employer", h.RequireAuth(), middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		employer.GET("/jobs", h.MyJobs)
	}
}

// ListJobs godoc
// @Summary Список вакансий с фильтрами
// @Description search ищет в title/company/description, location - подстрока, type - точное совпадение
// @Tags jobs
// @Produce json
// @Param search query string false "Строка поиска"
// @Param location query string false "Локация"
// @Param type query string false "full-time | part-time | contract | internship"
// @Success 200 {array} models.Job
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, err := h.jobService.GetJobs(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, algorithms.FilterJobs(jobs, query.Filter()))
}

// GetJob godoc
// @Summary Вакансия по ID
// @Tags jobs
// @Produce json
// @Param id path string true "ID вакансии"
// @Success 200 {object} models.Job
// @Failure 404 {object} apperrors.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJobByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary Новая вакансия
// @Description postedBy берется из токена
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.JobInput true "Вакансия"
// @Success 201 {object} models.Job
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var input dto.JobInput
	if !h.BindAndValidate_JSON(c, &input) {
		return
	}
	input.PostedBy = userID

	job, err := h.jobService.CreateJob(c.Request.Context(), &input)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// UpdateJob godoc
// @Summary Частичное обновление вакансии
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID вакансии"
// @Param request body dto.JobPatch true "Изменяемые поля"
// @Success 200 {object} models.Job
// @Failure 404 {object} apperrors.ErrorResponse "Job not found"
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var patch dto.JobPatch
	if !h.BindAndValidate_JSON(c, &patch) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary Удалить вакансию
// @Tags jobs
// @Security BearerAuth
// @Param id path string true "ID вакансии"
// @Success 204
// @Failure 404 {object} apperrors.ErrorResponse "Job not found"
// @Router /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.jobService.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MyJobs godoc
// @Summary Вакансии текущего работодателя
// @Tags employer
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Job
// @Router /employer/jobs [get]
func (h *JobHandler) MyJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.GetJobsByPoster(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}
