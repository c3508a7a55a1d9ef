package main

import (
	"github.com/gin-gonic/gin"
	"github.com/worklens/worklens/internal/config"
	"github.com/worklens/worklens/internal/middleware"
	"github.com/worklens/worklens/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, cfg *config.Config, svc *appServices) {
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for credential endpoints
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "worklens"})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/login", svc.authHandler.Login)
			auth.POST("/activate", svc.authHandler.Activate)
		}
		api.GET("/auth/me", middleware.EmployeeAuth(), svc.authHandler.Me)

		v1 := api.Group("/v1")

		// Management routes (admin API key)
		admin := v1.Group("", middleware.AdminKey(cfg.Admin.APIKey))
		{
			admin.POST("/employee", svc.employeeHandler.Create)
			admin.GET("/employee", svc.employeeHandler.List)
			admin.GET("/employee/:id", svc.employeeHandler.Get)
			admin.PUT("/employee/:id", svc.employeeHandler.Update)
			admin.POST("/employee/:id/deactivate", svc.employeeHandler.Deactivate)

			admin.POST("/project", svc.projectHandler.Create)
			admin.GET("/project", svc.projectHandler.List)
			admin.GET("/project/:id", svc.projectHandler.Get)
			admin.PUT("/project/:id", svc.projectHandler.Update)
			admin.DELETE("/project/:id", svc.projectHandler.Delete)

			admin.POST("/task", svc.taskHandler.Create)
			admin.GET("/task/:id", svc.taskHandler.Get)
			admin.PUT("/task/:id", svc.taskHandler.Update)
			admin.DELETE("/task/:id", svc.taskHandler.Delete)

			admin.PUT("/time-entries/update", svc.timeWindowHandler.BulkUpdate)

			admin.GET("/analytics/window", svc.analyticsHandler.Windows)
			admin.GET("/analytics/project-time", svc.analyticsHandler.ProjectTime)
		}

		// Employee routes (JWT)
		employee := v1.Group("", middleware.EmployeeAuth())
		{
			employee.POST("/employee/:id/permissions", svc.employeeHandler.UpdatePermissions)
			employee.POST("/time-entries", svc.timeWindowHandler.Submit)
		}

		// Shared routes (admin key or employee JWT)
		shared := v1.Group("", middleware.AdminOrEmployee(cfg.Admin.APIKey))
		{
			shared.GET("/task", svc.taskHandler.List)
			shared.GET("/analytics/task-time", svc.analyticsHandler.TaskTime)
		}
	}
}
