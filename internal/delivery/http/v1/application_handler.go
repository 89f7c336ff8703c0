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

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	r.POST("/jobs/:id/applications", middleware.Require(domain.PolicyAuthenticated, ""), handler.Apply)
	r.GET("/jobs/:id/applications", middleware.Require(domain.PolicyElevated, ""), handler.ListByJob)
	r.GET("/accounts/:id/applications", middleware.Require(domain.PolicyElevatedOrOwner, "id"), handler.ListByAccount)
	// Ownership of an application is resolved by the usecase from the
	// applicant id, not from the route.
	r.DELETE("/applications/:id", middleware.Require(domain.PolicyAuthenticated, ""), handler.Withdraw)
}

type ApplyRequest struct {
	Note string `json:"note"`
}

// Apply godoc
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int           true   "Job ID"
// @Param        body  body      ApplyRequest  false  "Application JSON"
// @Success      201   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /jobs/{id}/applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	accountID := c.GetString(string(domain.KeyAccountID))
	app, err := h.applicationUC.Apply(c.Request.Context(), accountID, jobID, req.Note)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListByJob godoc
// @Summary      List a job's applications (admin only)
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	apps, err := h.applicationUC.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job applications", apps)
}

// ListByAccount godoc
// @Summary      List an account's applications
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /accounts/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByAccount(c *gin.Context) {
	apps, err := h.applicationUC.ListByAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account applications", apps)
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Description  Allowed for the applicant or an admin
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.applicationUC.Withdraw(c.Request.Context(), middleware.CurrentIdentity(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application withdrawn", nil)
}
