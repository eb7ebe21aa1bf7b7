package repository

import (
	"context"
	"time"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRequestRepository struct {
	db *gorm.DB
}

func NewServiceRequestRepository(db *gorm.DB) *ServiceRequestRepository {
	return &ServiceRequestRepository{db: db}
}

// Create inserts a new service request together with its initial history entry
func (r *ServiceRequestRepository) Create(ctx context.Context, sr *domain.ServiceRequest, history *domain.ServiceRequestStatusHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sr).Error; err != nil {
			return err
		}
		if history == nil {
			return nil
		}
		history.ServiceRequestID = sr.ID
		return tx.Create(history).Error
	})
}

func (r *ServiceRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceRequest, error) {
	var sr domain.ServiceRequest
	err := r.db.WithContext(ctx).First(&sr, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sr, nil
}

// GetByCaseID looks up a request by its exact case code
func (r *ServiceRequestRepository) GetByCaseID(ctx context.Context, caseID string) (*domain.ServiceRequest, error) {
	var sr domain.ServiceRequest
	err := r.db.WithContext(ctx).Where("case_id = ?", caseID).First(&sr).Error
	if err != nil {
		return nil, err
	}
	return &sr, nil
}

// ListActive returns every request that is not archived, newest first
func (r *ServiceRequestRepository) ListActive(ctx context.Context) ([]domain.ServiceRequest, error) {
	var requests []domain.ServiceRequest
	err := r.db.WithContext(ctx).
		Where("status <> ?", domain.StatusArchived).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// ListArchived returns archived requests, newest first
func (r *ServiceRequestRepository) ListArchived(ctx context.Context) ([]domain.ServiceRequest, error) {
	var requests []domain.ServiceRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.StatusArchived).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// ListCompletedBefore returns completed requests finished before cutoff
func (r *ServiceRequestRepository) ListCompletedBefore(ctx context.Context, cutoff time.Time) ([]domain.ServiceRequest, error) {
	var requests []domain.ServiceRequest
	err := r.db.WithContext(ctx).
		Where("status = ? AND completed_at IS NOT NULL AND completed_at < ?", domain.StatusCompleted, cutoff).
		Order("completed_at ASC").
		Find(&requests).Error
	return requests, err
}

// Update persists all fields of sr and, when history is given, records the
// status change in the same transaction
func (r *ServiceRequestRepository) Update(ctx context.Context, sr *domain.ServiceRequest, history *domain.ServiceRequestStatusHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(sr).Error; err != nil {
			return err
		}
		if history == nil {
			return nil
		}
		history.ServiceRequestID = sr.ID
		return tx.Create(history).Error
	})
}
