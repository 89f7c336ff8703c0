package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(r *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", middleware.Require(domain.PolicyPublic, ""), handler.List)
		jobs.GET("/:id", middleware.Require(domain.PolicyPublic, ""), handler.Get)
		jobs.POST("", middleware.Require(domain.PolicyElevated, ""), handler.Create)
		jobs.PATCH("/:id", middleware.Require(domain.PolicyElevated, ""), handler.Update)
		jobs.DELETE("/:id", middleware.Require(domain.PolicyElevated, ""), handler.Delete)
	}
}

type CreateJobRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Company       string  `json:"company" binding:"required"`
	Location      string  `json:"location" binding:"required"`
	SalaryMin     float64 `json:"salary_min" binding:"required,gt=0"`
	SalaryMax     float64 `json:"salary_max" binding:"required,gt=0,gtefield=SalaryMin"`
	Remote        bool    `json:"remote"`
	TechnologyIDs []int64 `json:"technology_ids"`
}

// UpdateJobRequest carries the PATCH body; only present fields are applied.
// A present technology_ids replaces the requirement set outright.
type UpdateJobRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Company       *string  `json:"company"`
	Location      *string  `json:"location"`
	SalaryMin     *float64 `json:"salary_min" binding:"omitempty,gt=0"`
	SalaryMax     *float64 `json:"salary_max" binding:"omitempty,gt=0"`
	Remote        *bool    `json:"remote"`
	TechnologyIDs []int64  `json:"technology_ids"`
}

// List godoc
// @Summary      List job postings
// @Description  Public listing with optional filters, AND-combined
// @Tags         jobs
// @Produce      json
// @Param        title        query     string   false  "Title substring (case-insensitive)"
// @Param        location     query     string   false  "Exact location"
// @Param        salary_min   query     number   false  "Minimum acceptable salary"
// @Param        remote_only  query     boolean  false  "Remote jobs only"
// @Param        page         query     int      false  "Page number"
// @Param        page_size    query     int      false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	filters := map[string]any{}
	if v := c.Query("title"); v != "" {
		filters["title"] = v
	}
	if v := c.Query("location"); v != "" {
		filters["location"] = v
	}
	if v := c.Query("salary_min"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.Error(apperror.BadRequest("salary_min must be a number"))
			return
		}
		filters["salary_min"] = threshold
	}
	if v := c.Query("remote_only"); v != "" {
		remoteOnly, err := strconv.ParseBool(v)
		if err != nil {
			c.Error(apperror.BadRequest("remote_only must be a boolean"))
			return
		}
		filters["remote_only"] = remoteOnly
	}

	jobs, total, err := h.jobUC.ListJobs(c.Request.Context(), filters, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// Get godoc
// @Summary      Get job details
// @Description  Includes the job's required technology ids
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// Create godoc
// @Summary      Create a job posting (admin only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      CreateJobRequest  true  "Job JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:         req.Title,
		Description:   req.Description,
		CompanyName:   req.Company,
		Location:      req.Location,
		SalaryMin:     req.SalaryMin,
		SalaryMax:     req.SalaryMax,
		Remote:        req.Remote,
		TechnologyIDs: req.TechnologyIDs,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// Update godoc
// @Summary      Update a job posting (partial, admin only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Job ID"
// @Param        body  body      UpdateJobRequest  true  "Fields to update"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /jobs/{id} [patch]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
		c.Error(apperror.BadRequest("salary_min cannot be greater than salary_max"))
		return
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Company != nil {
		fields["company"] = *req.Company
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.SalaryMin != nil {
		fields["salary_min"] = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		fields["salary_max"] = *req.SalaryMax
	}
	if req.Remote != nil {
		fields["remote"] = *req.Remote
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), id, fields, req.TechnologyIDs)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete a job posting (admin only)
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}
