package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewInterviewHandler registers interview routes. An application holds at
// most one interview, so scheduling and rescheduling share one endpoint.
func NewInterviewHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &InterviewHandler{applicationUC: applicationUC}

	interviews := protected.Group("/applications/:id/interview")
	{
		interviews.POST("", handler.Schedule)
		interviews.PATCH("/status", handler.UpdateStatus)
	}
}

// ScheduleInterviewRequest is the payload for scheduling or rescheduling
type ScheduleInterviewRequest struct {
	ScheduledAt string `json:"scheduled_at" binding:"required"` // RFC 3339
	MeetingLink string `json:"meeting_link"`
}

// Schedule godoc
// @Summary      Schedule or reschedule an interview
// @Description  Creates the application's interview or replaces its date and link; the application moves to interview_scheduled and the candidate is notified
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "Application ID"
// @Param        body  body      ScheduleInterviewRequest  true  "Interview data"
// @Success      200   {object}  response.Response{data=domain.Interview}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/interview [post]
// @Security     BearerAuth
func (h *InterviewHandler) Schedule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		c.Error(apperror.BadRequest("scheduled_at must be a valid RFC 3339 timestamp"))
		return
	}

	interview, err := h.applicationUC.ScheduleInterview(c.Request.Context(), id, scheduledAt, req.MeetingLink)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview scheduled", interview)
}

// InterviewStatusRequest is the payload for completing or cancelling
type InterviewStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=completed cancelled"`
}

// UpdateStatus godoc
// @Summary      Complete or cancel an interview
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Application ID"
// @Param        body  body      InterviewStatusRequest  true  "New status"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/interview/status [patch]
// @Security     BearerAuth
func (h *InterviewHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req InterviewStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.applicationUC.UpdateInterviewStatus(c.Request.Context(), id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview status updated", nil)
}
