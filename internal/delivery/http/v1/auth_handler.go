package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers session routes. Credentials never pass through
// this service; tokens are issued by the external identity provider and the
// routes here only mirror the authenticated identity into the local users
// table.
func NewAuthHandler(protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := protected.Group("/auth")
	{
		auth.POST("/sync", middleware.StrictRateLimitMiddleware(), handler.SyncProfile)
		auth.POST("/role", middleware.StrictRateLimitMiddleware(), handler.SelectRole)
		auth.GET("/me", handler.Me)
	}
}

// SyncProfile godoc
// @Summary      Sync authenticated user
// @Description  Ensure the token's subject exists in the local users table
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/sync [post]
// @Security     BearerAuth
func (h *AuthHandler) SyncProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	email := c.GetString(string(domain.KeyUserEmail))

	user := &domain.User{
		ID:    userID,
		Email: email,
		// Role left empty so an existing role is never overwritten;
		// new users default to candidate.
	}

	if err := h.authUC.EnsureUserExists(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	synced, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile synced", synced)
}

type SelectRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=candidate enterprise"`
}

// SelectRole godoc
// @Summary      Select account role
// @Description  Choose candidate or enterprise for the current account. Admin cannot be self-assigned.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      SelectRoleRequest  true  "Role selection"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /auth/role [post]
// @Security     BearerAuth
func (h *AuthHandler) SelectRole(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req SelectRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.AssignRole(c.Request.Context(), userID, req.Role); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Role updated", gin.H{"role": req.Role})
}

// Me godoc
// @Summary      Current user
// @Description  Return the authenticated user's account record
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", user)
}
