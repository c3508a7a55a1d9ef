package services

import (
	"encoding/json"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/worklens/worklens/internal/models"
	"github.com/worklens/worklens/pkg/logger"
	"gorm.io/gorm"
)

// OperationLogService persists audit records for administrative mutations and
// consistency warnings raised by the assignment cascade.
type OperationLogService struct {
	db *gorm.DB
}

func NewOperationLogService(db *gorm.DB) *OperationLogService {
	return &OperationLogService{db: db}
}

func (s *OperationLogService) Info(module, action, message string, extra interface{}) {
	s.write("info", module, action, message, extra)
}

func (s *OperationLogService) Warning(module, action, message string, extra interface{}) {
	s.write("warning", module, action, message, extra)
}

func (s *OperationLogService) Error(module, action, message string, extra interface{}) {
	s.write("error", module, action, message, extra)
}

func (s *OperationLogService) write(level, module, action, message string, extra interface{}) {
	if s == nil || s.db == nil {
		return
	}

	var extraStr string
	if extra != nil {
		if b, err := json.Marshal(extra); err == nil {
			extraStr = string(b)
		}
	}

	entry := &models.OperationLog{
		Level:     level,
		Module:    module,
		Action:    action,
		Message:   message,
		Extra:     extraStr,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(entry).Error; err != nil {
		logger.Warn().Err(err).Str("module", module).Str("action", action).
			Msg("failed to persist operation log entry")
	}
}

// Cleanup deletes entries older than retentionDays and returns the count.
func (s *OperationLogService) Cleanup(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := s.db.Where("created_at < ?", cutoff).Delete(&models.OperationLog{})
	return result.RowsAffected, result.Error
}

// StartCleanupScheduler runs Cleanup daily at 03:00 and returns the scheduler
// so the caller can stop it at shutdown.
func (s *OperationLogService) StartCleanupScheduler(retentionDays int) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("0 3 * * *", func() {
		deleted, err := s.Cleanup(retentionDays)
		if err != nil {
			logger.Error().Err(err).Msg("operation log cleanup failed")
			return
		}
		if deleted > 0 {
			logger.Infof("operation log cleanup removed %d entries", deleted)
		}
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to schedule operation log cleanup")
		return c
	}
	c.Start()
	logger.Info().Int("retention_days", retentionDays).Msg("operation log cleanup scheduler started")
	return c
}
