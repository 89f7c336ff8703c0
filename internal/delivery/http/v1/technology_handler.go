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

type TechnologyHandler struct {
	technologyUC domain.TechnologyUsecase
}

func NewTechnologyHandler(r *gin.RouterGroup, technologyUC domain.TechnologyUsecase) {
	handler := &TechnologyHandler{technologyUC: technologyUC}

	techs := r.Group("/technologies")
	{
		techs.GET("", middleware.Require(domain.PolicyPublic, ""), handler.List)
		techs.POST("", middleware.Require(domain.PolicyElevated, ""), handler.Create)
		techs.PATCH("/:id", middleware.Require(domain.PolicyElevated, ""), handler.Update)
		techs.DELETE("/:id", middleware.Require(domain.PolicyElevated, ""), handler.Delete)
	}
}

type CreateTechnologyRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

type UpdateTechnologyRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
}

// List godoc
// @Summary      List technology tags
// @Tags         technologies
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /technologies [get]
func (h *TechnologyHandler) List(c *gin.Context) {
	techs, err := h.technologyUC.ListTechnologies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Technology list", techs)
}

// Create godoc
// @Summary      Create a technology tag (admin only)
// @Tags         technologies
// @Accept       json
// @Produce      json
// @Param        body  body      CreateTechnologyRequest  true  "Technology JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /technologies [post]
// @Security     BearerAuth
func (h *TechnologyHandler) Create(c *gin.Context) {
	var req CreateTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	tech := &domain.Technology{Name: req.Name, Category: req.Category}
	if err := h.technologyUC.CreateTechnology(c.Request.Context(), tech); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Technology created", tech)
}

// Update godoc
// @Summary      Update a technology tag (partial, admin only)
// @Tags         technologies
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true  "Technology ID"
// @Param        body  body      UpdateTechnologyRequest  true  "Fields to update"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /technologies/{id} [patch]
// @Security     BearerAuth
func (h *TechnologyHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req UpdateTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}

	tech, err := h.technologyUC.UpdateTechnology(c.Request.Context(), id, fields)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Technology updated", tech)
}

// Delete godoc
// @Summary      Delete a technology tag (admin only)
// @Tags         technologies
// @Produce      json
// @Param        id   path      int  true  "Technology ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /technologies/{id} [delete]
// @Security     BearerAuth
func (h *TechnologyHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.technologyUC.DeleteTechnology(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Technology deleted", nil)
}
