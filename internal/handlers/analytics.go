package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/worklens/worklens/internal/middleware"
	"github.com/worklens/worklens/internal/services"
	"github.com/worklens/worklens/pkg/response"
)

type AnalyticsHandler struct {
	timeService      *services.TimeTrackingService
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(timeService *services.TimeTrackingService, analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{timeService: timeService, analyticsService: analyticsService}
}

func parseRange(c *gin.Context) (int64, int64, bool) {
	start, err := strconv.ParseInt(c.Query("start"), 10, 64)
	if err != nil {
		response.BadRequest(c, "start must be a unix millisecond timestamp")
		return 0, 0, false
	}
	end, err := strconv.ParseInt(c.Query("end"), 10, 64)
	if err != nil {
		response.BadRequest(c, "end must be a unix millisecond timestamp")
		return 0, 0, false
	}
	return start, end, true
}

// Windows lists raw time windows whose translated span falls inside the range.
// GET /api/v1/analytics/window?start=&end=&employeeId=
func (h *AnalyticsHandler) Windows(c *gin.Context) {
	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	windows, err := h.timeService.ListInRange(start, end, c.Query("employeeId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, windows)
}

// ProjectTime aggregates time, income and costs per project over a range.
// GET /api/v1/analytics/project-time?start=&end=&employeeId=&projectId=&taskId=
func (h *AnalyticsHandler) ProjectTime(c *gin.Context) {
	start, end, ok := parseRange(c)
	if !ok {
		return
	}

	report, err := h.analyticsService.ProjectTimeReport(start, end,
		c.Query("employeeId"), c.Query("projectId"), c.Query("taskId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

// TaskTime returns the lifetime total an employee has tracked against a task.
// Employees may only query their own totals.
// GET /api/v1/analytics/task-time?employeeId=&taskId=
func (h *AnalyticsHandler) TaskTime(c *gin.Context) {
	employeeID := c.Query("employeeId")
	taskID := c.Query("taskId")
	if employeeID == "" || taskID == "" {
		response.BadRequest(c, "employeeId and taskId are required")
		return
	}
	if !middleware.IsAdmin(c) && middleware.GetEmployeeID(c) != employeeID {
		response.Forbidden(c, "cannot view another employee's task time")
		return
	}

	total, err := h.analyticsService.EmployeeTaskTotal(employeeID, taskID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, total)
}
