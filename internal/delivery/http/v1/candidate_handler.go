package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

// NewCandidateHandler registers candidate profile routes
func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := protected.Group("/candidates")
	{
		candidates.GET("/me", handler.GetMyProfile)
		candidates.POST("/me", handler.CreateProfile)
		candidates.PUT("/me", handler.UpdateProfile)
	}
}

// CandidateProfileRequest is the payload for creating/updating a profile
type CandidateProfileRequest struct {
	FullName string   `json:"full_name" binding:"required"`
	Title    string   `json:"title"`
	Bio      string   `json:"bio"`
	Skills   []string `json:"skills" binding:"required,min=1"`
	Phone    string   `json:"phone"`
	PhotoURL *string  `json:"photo_url"`
	CvURL    *string  `json:"cv_url"`
}

func (r *CandidateProfileRequest) toProfile(userID string) *domain.CandidateProfile {
	return &domain.CandidateProfile{
		UserID:   userID,
		FullName: r.FullName,
		Title:    r.Title,
		Bio:      r.Bio,
		Skills:   r.Skills,
		Phone:    r.Phone,
		PhotoURL: r.PhotoURL,
		CvURL:    r.CvURL,
	}
}

// GetMyProfile godoc
// @Summary      Get my candidate profile
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      404  {object}  response.Response
// @Router       /candidates/me [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetMyProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.candidateUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// CreateProfile godoc
// @Summary      Create my candidate profile
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      CandidateProfileRequest  true  "Profile data"
// @Success      201   {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /candidates/me [post]
// @Security     BearerAuth
func (h *CandidateHandler) CreateProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleCandidate {
		c.Error(apperror.Forbidden("Only candidates can create a candidate profile"))
		return
	}

	var req CandidateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := req.toProfile(userID)
	if err := h.candidateUC.CreateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile created", profile)
}

// UpdateProfile godoc
// @Summary      Update my candidate profile
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      CandidateProfileRequest  true  "Profile data"
// @Success      200   {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /candidates/me [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleCandidate {
		c.Error(apperror.Forbidden("Only candidates can update a candidate profile"))
		return
	}

	var req CandidateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := req.toProfile(userID)
	if err := h.candidateUC.UpdateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}
