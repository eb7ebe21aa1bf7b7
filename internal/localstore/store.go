// Package localstore keeps manual Kanban tasks in an on-device SQLite file.
// Tasks stored here are never synced to the API.
package localstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/datalab-ge/datalab-api/internal/config"
	"github.com/datalab-ge/datalab-api/internal/database"
	"github.com/datalab-ge/datalab-api/internal/domain"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no manual task matches
var ErrNotFound = errors.New("manual task not found")

// Store is the manual-task store
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the store at path
func Open(path string) (*Store, error) {
	db, err := database.NewDatabase(&config.DatabaseConfig{
		Driver:       database.DriverSQLite,
		Path:         path,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	if err := db.AutoMigrate(&domain.ManualTask{}); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to migrate local store: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenConfig opens the store configured for the admin console
func OpenConfig(cfg *config.LocalStoreConfig) (*Store, error) {
	return Open(cfg.Path)
}

// Save inserts or replaces a task. A case code held by another task yields
// domain.ErrDuplicateCaseCode.
func (s *Store) Save(ctx context.Context, task *domain.ManualTask) error {
	if task.ID == "" || task.CaseID == "" {
		return fmt.Errorf("manual task requires id and case_id")
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		err := tx.Model(&domain.ManualTask{}).
			Where("case_id = ? AND id <> ?", task.CaseID, task.ID).
			Count(&taken).Error
		if err != nil {
			return fmt.Errorf("failed to check case code: %w", err)
		}
		if taken > 0 {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateCaseCode, task.CaseID)
		}
		if err := tx.Save(task).Error; err != nil {
			return fmt.Errorf("failed to save manual task: %w", err)
		}
		return nil
	})
}

func (s *Store) Get(ctx context.Context, id string) (*domain.ManualTask, error) {
	var task domain.ManualTask
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get manual task: %w", err)
	}
	return &task, nil
}

// GetByCaseID matches the case code exactly, letter case included
func (s *Store) GetByCaseID(ctx context.Context, caseID string) (*domain.ManualTask, error) {
	var task domain.ManualTask
	err := s.db.WithContext(ctx).Where("case_id = ?", caseID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, caseID)
		}
		return nil, fmt.Errorf("failed to get manual task: %w", err)
	}
	return &task, nil
}

// List returns every task, newest first
func (s *Store) List(ctx context.Context) ([]domain.ManualTask, error) {
	var tasks []domain.ManualTask
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list manual tasks: %w", err)
	}
	return tasks, nil
}

func (s *Store) Close() error {
	return database.Close(s.db)
}
