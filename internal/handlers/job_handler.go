package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterPublicRoutes mounts the listing, which anyone may browse.
func (h *JobHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.List)
}

// RegisterProtectedRoutes mounts posting creation for signed-in users.
func (h *JobHandler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs", h.Create)
}

func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	page, pageSize := ParsePagination(c)

	resp, err := h.jobService.List(&query, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}
