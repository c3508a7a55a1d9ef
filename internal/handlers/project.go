package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/worklens/worklens/internal/middleware"
	"github.com/worklens/worklens/internal/services"
	"github.com/worklens/worklens/pkg/response"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// Create creates a project and syncs initial member assignments.
// POST /api/v1/project
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Create(&req, middleware.GetEmployeeID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, project)
}

// List returns all non-archived projects.
// GET /api/v1/project
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, projects)
}

// Get returns one project by id.
// GET /api/v1/project/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, project)
}

// Update patches project fields and reconciles member assignments.
// PUT /api/v1/project/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req services.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Update(c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, project)
}

// Delete removes a project and clears it from member assignment lists.
// DELETE /api/v1/project/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
