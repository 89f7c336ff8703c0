package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC          domain.SkillUsecase
	recommendationUC domain.RecommendationUsecase
}

func NewSkillHandler(r *gin.RouterGroup, skillUC domain.SkillUsecase, recommendationUC domain.RecommendationUsecase) {
	handler := &SkillHandler{skillUC: skillUC, recommendationUC: recommendationUC}

	owned := middleware.Require(domain.PolicyElevatedOrOwner, "id")
	r.GET("/accounts/:id/skills", owned, handler.GetSkills)
	r.PUT("/accounts/:id/skills", owned, handler.ReplaceSkills)
	r.GET("/accounts/:id/recommendations", owned, handler.Recommendations)
}

type ReplaceSkillsRequest struct {
	TechnologyIDs []int64 `json:"technology_ids" binding:"required"`
}

// GetSkills godoc
// @Summary      Get an account's skill set
// @Tags         skills
// @Produce      json
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /accounts/{id}/skills [get]
// @Security     BearerAuth
func (h *SkillHandler) GetSkills(c *gin.Context) {
	techs, err := h.skillUC.GetSkills(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill set", techs)
}

// ReplaceSkills godoc
// @Summary      Replace an account's skill set
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Account ID"
// @Param        body  body      ReplaceSkillsRequest  true  "Technology ids"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /accounts/{id}/skills [put]
// @Security     BearerAuth
func (h *SkillHandler) ReplaceSkills(c *gin.Context) {
	var req ReplaceSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	techs, err := h.skillUC.ReplaceSkills(c.Request.Context(), c.Param("id"), req.TechnologyIDs)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill set replaced", techs)
}

// Recommendations godoc
// @Summary      List jobs the account is qualified for
// @Description  Jobs whose full requirement set the account's skills cover,
// @Description  in posting order
// @Tags         recommendations
// @Produce      json
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /accounts/{id}/recommendations [get]
// @Security     BearerAuth
func (h *SkillHandler) Recommendations(c *gin.Context) {
	jobs, err := h.recommendationUC.RecommendJobs(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recommended jobs", jobs)
}
