package main

import (
	"github.com/worklens/worklens/internal/config"
	"github.com/worklens/worklens/internal/handlers"
	"github.com/worklens/worklens/internal/models"
	"github.com/worklens/worklens/internal/services"
	"github.com/worklens/worklens/internal/store"
	"github.com/worklens/worklens/internal/utils"
	"github.com/worklens/worklens/pkg/logger"
)

// appServices holds all initialized handlers needed by the route table.
type appServices struct {
	authHandler       *handlers.AuthHandler
	employeeHandler   *handlers.EmployeeHandler
	projectHandler    *handlers.ProjectHandler
	taskHandler       *handlers.TaskHandler
	timeWindowHandler *handlers.TimeWindowHandler
	analyticsHandler  *handlers.AnalyticsHandler
}

// bootstrap initializes database, repositories, services and handlers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	db, err := models.OpenDB(&cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	employeeRepo := store.NewEmployeeRepo(db)
	projectRepo := store.NewProjectRepo(db)
	taskRepo := store.NewTaskRepo(db)
	windowRepo := store.NewTimeWindowRepo(db)

	oplog := services.NewOperationLogService(db)
	oplog.StartCleanupScheduler(cfg.Log.RetentionDays)

	emailService := services.NewEmailService(cfg.Email)
	syncer := services.NewAssignmentSyncer(employeeRepo)
	employeeService := services.NewEmployeeService(employeeRepo, projectRepo, emailService, oplog)
	projectService := services.NewProjectService(projectRepo, employeeRepo, syncer, oplog)
	taskService := services.NewTaskService(taskRepo, projectRepo)
	timeService := services.NewTimeTrackingService(windowRepo, employeeRepo, projectRepo, taskRepo)
	analyticsService := services.NewAnalyticsService(windowRepo)
	authService := services.NewAuthService(employeeService, &cfg.JWT)

	return &appServices{
		authHandler:       handlers.NewAuthHandler(authService, employeeService),
		employeeHandler:   handlers.NewEmployeeHandler(employeeService),
		projectHandler:    handlers.NewProjectHandler(projectService),
		taskHandler:       handlers.NewTaskHandler(taskService),
		timeWindowHandler: handlers.NewTimeWindowHandler(timeService),
		analyticsHandler:  handlers.NewAnalyticsHandler(timeService, analyticsService),
	}
}
