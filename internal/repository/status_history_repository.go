package repository

import (
	"context"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatusHistoryRepository struct {
	db *gorm.DB
}

func NewStatusHistoryRepository(db *gorm.DB) *StatusHistoryRepository {
	return &StatusHistoryRepository{db: db}
}

// Create records a status transition
func (r *StatusHistoryRepository) Create(ctx context.Context, history *domain.ServiceRequestStatusHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

// ListByServiceRequestID returns the status history of a request, oldest first
func (r *StatusHistoryRepository) ListByServiceRequestID(ctx context.Context, serviceRequestID uuid.UUID) ([]domain.ServiceRequestStatusHistory, error) {
	var history []domain.ServiceRequestStatusHistory
	err := r.db.WithContext(ctx).
		Where("service_request_id = ?", serviceRequestID).
		Order("changed_at ASC").
		Find(&history).Error
	return history, err
}
