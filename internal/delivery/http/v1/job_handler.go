package v1

import (
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobOfferUsecase
}

// NewJobHandler registers job offer routes. Listing and detail are public;
// everything that mutates requires an authenticated enterprise (or admin
// for delete).
func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobOfferUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	public.GET("/jobs", handler.ListActiveJobs)
	public.GET("/jobs/:jobId", handler.GetJobDetails)

	jobs := protected.Group("/jobs")
	{
		jobs.POST("", handler.CreateJob)
		jobs.PUT("/:jobId", handler.UpdateJob)
		jobs.PATCH("/:jobId/close", handler.CloseJob)
		jobs.DELETE("/:jobId", handler.DeleteJob)
	}

	protected.GET("/enterprises/jobs", handler.ListMyJobs)
}

// JobOfferRequest is the payload for creating/updating a job offer
type JobOfferRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Location     string   `json:"location"`
	SalaryMin    float64  `json:"salary_min"`
	SalaryMax    float64  `json:"salary_max"`
}

// pagination reads ?page= and ?page_size= with sane bounds.
func pagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

// ListActiveJobs godoc
// @Summary      List active job offers
// @Tags         jobs
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response{data=[]domain.JobOfferWithCompany}
// @Router       /jobs [get]
func (h *JobHandler) ListActiveJobs(c *gin.Context) {
	page, pageSize := pagination(c)

	jobs, total, err := h.jobUC.ListActiveJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job offers retrieved", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetJobDetails godoc
// @Summary      Get job offer details
// @Tags         jobs
// @Produce      json
// @Param        jobId  path      int  true  "Job offer ID"
// @Success      200    {object}  response.Response{data=domain.JobOfferWithCompany}
// @Failure      404    {object}  response.Response
// @Router       /jobs/{jobId} [get]
func (h *JobHandler) GetJobDetails(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job offer ID"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job offer retrieved", job)
}

// CreateJob godoc
// @Summary      Publish a job offer
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      JobOfferRequest  true  "Job offer data"
// @Success      201   {object}  response.Response{data=domain.JobOffer}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEnterprise {
		c.Error(apperror.Forbidden("Only enterprise accounts can publish job offers"))
		return
	}

	var req JobOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.JobOffer{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job offer published", job)
}

// ListMyJobs godoc
// @Summary      List my job offers
// @Description  All job offers published by the current enterprise, active and closed
// @Tags         jobs
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response{data=[]domain.JobOffer}
// @Failure      403        {object}  response.Response
// @Router       /enterprises/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEnterprise {
		c.Error(apperror.Forbidden("Only enterprise accounts can list their job offers"))
		return
	}

	page, pageSize := pagination(c)

	jobs, total, err := h.jobUC.ListJobsByEnterprise(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job offers retrieved", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// UpdateJob godoc
// @Summary      Update a job offer
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        jobId  path      int              true  "Job offer ID"
// @Param        body   body      JobOfferRequest  true  "Job offer data"
// @Success      200    {object}  response.Response{data=domain.JobOffer}
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /jobs/{jobId} [put]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job offer ID"))
		return
	}

	var req JobOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.JobOffer{
		ID:           jobID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
	}

	if err := h.jobUC.UpdateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job offer updated", job)
}

// CloseJob godoc
// @Summary      Close a job offer
// @Description  Closed job offers stop accepting applications but remain visible to their owner
// @Tags         jobs
// @Produce      json
// @Param        jobId  path      int  true  "Job offer ID"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /jobs/{jobId}/close [patch]
// @Security     BearerAuth
func (h *JobHandler) CloseJob(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job offer ID"))
		return
	}

	if err := h.jobUC.CloseJob(c.Request.Context(), userID, jobID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job offer closed", nil)
}

// DeleteJob godoc
// @Summary      Delete a job offer
// @Description  Remove a job offer with all its applications and interviews (Admin only)
// @Tags         jobs
// @Produce      json
// @Param        jobId  path      int  true  "Job offer ID"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /jobs/{jobId} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only admins can delete job offers"))
		return
	}

	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job offer ID"))
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, jobID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job offer deleted", nil)
}
