package v1

import (
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyProfileHandler struct {
	companyUC domain.CompanyProfileUsecase
}

// NewCompanyProfileHandler registers company profile routes. The public
// profile view stays outside the auth group so job seekers can browse
// companies without an account.
func NewCompanyProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, companyUC domain.CompanyProfileUsecase) {
	handler := &CompanyProfileHandler{companyUC: companyUC}

	public.GET("/companies/:id", handler.GetPublicProfile)

	enterprises := protected.Group("/enterprises")
	{
		enterprises.GET("/me", handler.GetMyProfile)
		enterprises.PUT("/me", handler.UpsertProfile)
	}
}

// CompanyProfileRequest is the payload for creating/updating a company profile
type CompanyProfileRequest struct {
	CompanyName string  `json:"company_name" binding:"required"`
	LogoURL     *string `json:"logo_url"`
	Website     *string `json:"website"`
	Industry    *string `json:"industry"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

// GetMyProfile godoc
// @Summary      Get my company profile
// @Tags         enterprises
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CompanyProfile}
// @Failure      404  {object}  response.Response
// @Router       /enterprises/me [get]
// @Security     BearerAuth
func (h *CompanyProfileHandler) GetMyProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.companyUC.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profile retrieved", profile)
}

// UpsertProfile godoc
// @Summary      Create or update my company profile
// @Tags         enterprises
// @Accept       json
// @Produce      json
// @Param        body  body      CompanyProfileRequest  true  "Company profile data"
// @Success      200   {object}  response.Response{data=domain.CompanyProfile}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /enterprises/me [put]
// @Security     BearerAuth
func (h *CompanyProfileHandler) UpsertProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEnterprise {
		c.Error(apperror.Forbidden("Only enterprise accounts can manage a company profile"))
		return
	}

	var req CompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.CompanyProfile{
		UserID:      userID,
		CompanyName: req.CompanyName,
		LogoURL:     req.LogoURL,
		Website:     req.Website,
		Industry:    req.Industry,
		Location:    req.Location,
		Description: req.Description,
	}

	if err := h.companyUC.UpsertProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profile saved", profile)
}

// GetPublicProfile godoc
// @Summary      Get a company's public profile
// @Tags         enterprises
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Response{data=domain.CompanyProfile}
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
func (h *CompanyProfileHandler) GetPublicProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid company ID"))
		return
	}

	profile, err := h.companyUC.GetPublicProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profile retrieved", profile)
}
