package v1

import (
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC        domain.AdminUsecase
	applicationUC  domain.ApplicationUsecase
	securityEvents *security.EventRepository
}

// NewAdminHandler registers the admin surface. Every route double-checks
// the role here even though the usecases enforce it again.
func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase, applicationUC domain.ApplicationUsecase, securityEvents *security.EventRepository) {
	handler := &AdminHandler{
		adminUC:        adminUC,
		applicationUC:  applicationUC,
		securityEvents: securityEvents,
	}

	admin := protected.Group("/admin")
	admin.Use(requireAdmin())
	{
		admin.GET("/stats", handler.GetStats)
		admin.GET("/users", handler.ListUsers)
		admin.POST("/users", handler.CreateUser)
		admin.GET("/applications", handler.ListApplications)
		admin.PATCH("/applications/:id/anonymity", handler.ToggleAnonymity)
		admin.DELETE("/applications/:id", handler.DeleteApplication)
		admin.GET("/security-events", handler.ListSecurityEvents)
	}
}

func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(string(domain.KeyUserRole)) != domain.RoleAdmin {
			c.Error(apperror.Forbidden("Admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetStats godoc
// @Summary      Platform statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.AdminStats}
// @Failure      403  {object}  response.Response
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUC.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Statistics retrieved", stats)
}

// ListUsers godoc
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := pagination(c)

	users, err := h.adminUC.ListUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Users retrieved", users)
}

// CreateUserRequest is the payload for provisioning a user
type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=candidate enterprise admin"`
}

// CreateUser godoc
// @Summary      Provision a user
// @Description  Creates a local user record with a chosen role, ahead of their first login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      CreateUserRequest  true  "User data"
// @Success      201   {object}  response.Response{data=domain.User}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /admin/users [post]
// @Security     BearerAuth
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.adminUC.CreateUser(c.Request.Context(), req.Email, req.Role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User created", user)
}

// ListApplications godoc
// @Summary      List all applications
// @Description  Paginated, newest first, never anonymized
// @Tags         admin
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response{data=[]domain.Application}
// @Failure      403        {object}  response.Response
// @Router       /admin/applications [get]
// @Security     BearerAuth
func (h *AdminHandler) ListApplications(c *gin.Context) {
	page, pageSize := pagination(c)

	applications, total, err := h.applicationUC.ListAll(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", gin.H{
		"applications": applications,
		"total":        total,
		"page":         page,
		"page_size":    pageSize,
	})
}

// ToggleAnonymity godoc
// @Summary      Toggle application anonymity
// @Description  Flips the anonymous flag; anonymized candidate data is hidden from the enterprise view only
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      404  {object}  response.Response
// @Router       /admin/applications/{id}/anonymity [patch]
// @Security     BearerAuth
func (h *AdminHandler) ToggleAnonymity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	app, err := h.applicationUC.ToggleAnonymity(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Anonymity updated", app)
}

// DeleteApplication godoc
// @Summary      Delete an application
// @Description  Removes the application and its interview in one transaction
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/applications/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteApplication(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	if err := h.applicationUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application deleted", nil)
}

// ListSecurityEvents godoc
// @Summary      Recent security events
// @Tags         admin
// @Produce      json
// @Param        limit  query     int  false  "Max events to return"
// @Success      200    {object}  response.Response{data=[]security.StoredEvent}
// @Failure      403    {object}  response.Response
// @Router       /admin/security-events [get]
// @Security     BearerAuth
func (h *AdminHandler) ListSecurityEvents(c *gin.Context) {
	if h.securityEvents == nil {
		c.Error(apperror.New(http.StatusServiceUnavailable, "Security event store is not configured", nil))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit < 1 || limit > 500 {
		limit = 100
	}

	events, err := h.securityEvents.FetchRecent(c.Request.Context(), limit)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Security events retrieved", events)
}
