package repository

import (
	"context"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

func (r *ContactMessageRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *ContactMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	var msg domain.ContactMessage
	err := r.db.WithContext(ctx).First(&msg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// List returns every message, newest first
func (r *ContactMessageRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	var messages []domain.ContactMessage
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// UpdateStatus sets the status of one message; gorm.ErrRecordNotFound if it does not exist
func (r *ContactMessageRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ContactMessageStatus) error {
	result := r.db.WithContext(ctx).
		Model(&domain.ContactMessage{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus returns the number of messages per status
func (r *ContactMessageRepository) CountByStatus(ctx context.Context) (map[domain.ContactMessageStatus]int64, error) {
	var rows []struct {
		Status domain.ContactMessageStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.ContactMessage{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.ContactMessageStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
