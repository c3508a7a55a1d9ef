package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/worklens/worklens/internal/middleware"
	"github.com/worklens/worklens/internal/services"
	"github.com/worklens/worklens/pkg/response"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Create creates a task under a project.
// POST /api/v1/task
func (h *TaskHandler) Create(c *gin.Context) {
	var req services.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.Create(&req, middleware.GetEmployeeID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, task)
}

// List returns tasks, optionally filtered by project. Employees only see
// tasks they are assigned to.
// GET /api/v1/task?projectId=
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.List(c.Query("projectId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if !middleware.IsAdmin(c) {
		employeeID := middleware.GetEmployeeID(c)
		visible := tasks[:0]
		for _, t := range tasks {
			if t.Employees.Contains(employeeID) {
				visible = append(visible, t)
			}
		}
		tasks = visible
	}
	response.Success(c, tasks)
}

// Get returns one task by id.
// GET /api/v1/task/:id
func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.taskService.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, task)
}

// Update patches task fields, revalidating assignment against the final
// project and employee set.
// PUT /api/v1/task/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var req services.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.Update(c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, task)
}

// Delete removes a task. Recorded time windows keep their task id.
// DELETE /api/v1/task/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.taskService.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
