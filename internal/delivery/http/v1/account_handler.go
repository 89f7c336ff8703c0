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

type AccountHandler struct {
	accountUC domain.AccountUsecase
}

func NewAccountHandler(r *gin.RouterGroup, accountUC domain.AccountUsecase) {
	handler := &AccountHandler{accountUC: accountUC}

	accounts := r.Group("/accounts")
	{
		accounts.GET("", middleware.Require(domain.PolicyElevated, ""), handler.List)
		accounts.GET("/:id", middleware.Require(domain.PolicyElevatedOrOwner, "id"), handler.Get)
		accounts.PATCH("/:id", middleware.Require(domain.PolicyElevatedOrOwner, "id"), handler.Update)
		accounts.DELETE("/:id", middleware.Require(domain.PolicyElevatedOrOwner, "id"), handler.Delete)
	}
}

// UpdateAccountRequest carries the PATCH body. Pointer fields distinguish
// "absent" from "set to zero value"; only present fields reach the update.
type UpdateAccountRequest struct {
	Email *string `json:"email" binding:"omitempty,email"`
	Name  *string `json:"name"`
}

// List godoc
// @Summary      List accounts (admin only)
// @Tags         accounts
// @Produce      json
// @Param        email      query     string  false  "Exact email"
// @Param        name       query     string  false  "Name substring"
// @Param        role       query     string  false  "Exact role"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /accounts [get]
// @Security     BearerAuth
func (h *AccountHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	filters := map[string]any{}
	if v := c.Query("email"); v != "" {
		filters["email"] = v
	}
	if v := c.Query("name"); v != "" {
		filters["name"] = v
	}
	if v := c.Query("role"); v != "" {
		filters["role"] = v
	}

	accounts, total, err := h.accountUC.ListAccounts(c.Request.Context(), filters, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account list", gin.H{
		"accounts":  accounts,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// Get godoc
// @Summary      Get one account
// @Tags         accounts
// @Produce      json
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /accounts/{id} [get]
// @Security     BearerAuth
func (h *AccountHandler) Get(c *gin.Context) {
	account, err := h.accountUC.GetAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account details", account)
}

// Update godoc
// @Summary      Update an account (partial)
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Account ID"
// @Param        body  body      UpdateAccountRequest  true  "Fields to update"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /accounts/{id} [patch]
// @Security     BearerAuth
func (h *AccountHandler) Update(c *gin.Context) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	fields := map[string]any{}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}

	account, err := h.accountUC.UpdateAccount(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account updated", account)
}

// Delete godoc
// @Summary      Delete an account
// @Tags         accounts
// @Produce      json
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /accounts/{id} [delete]
// @Security     BearerAuth
func (h *AccountHandler) Delete(c *gin.Context) {
	if err := h.accountUC.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account deleted", nil)
}
