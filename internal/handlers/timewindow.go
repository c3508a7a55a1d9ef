package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/worklens/worklens/internal/middleware"
	"github.com/worklens/worklens/internal/services"
	"github.com/worklens/worklens/pkg/response"
)

type TimeWindowHandler struct {
	timeService *services.TimeTrackingService
}

func NewTimeWindowHandler(timeService *services.TimeTrackingService) *TimeWindowHandler {
	return &TimeWindowHandler{timeService: timeService}
}

// Submit records a tracked time window for the authenticated employee.
// POST /api/v1/time-entries
func (h *TimeWindowHandler) Submit(c *gin.Context) {
	var req services.SubmitTimeWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	window, err := h.timeService.Submit(&req, middleware.GetEmployeeID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, window)
}

// BulkUpdate patches every window matching the employeeId/projectId query
// filters. At least one filter is required.
// PUT /api/v1/time-entries/update
func (h *TimeWindowHandler) BulkUpdate(c *gin.Context) {
	var req services.BulkUpdateTimeWindowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	count, err := h.timeService.BulkUpdate(&req, c.Query("employeeId"), c.Query("projectId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"modified_count": count})
}
