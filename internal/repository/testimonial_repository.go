package repository

import (
	"context"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error) {
	var t domain.Testimonial
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns testimonials newest first, optionally only the active ones
func (r *TestimonialRepository) List(ctx context.Context, activeOnly bool) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("created_at DESC").Find(&testimonials).Error
	return testimonials, err
}

// Update persists all fields, including zero values such as is_active=false
func (r *TestimonialRepository) Update(ctx context.Context, t *domain.Testimonial) error {
	return r.db.WithContext(ctx).Save(t).Error
}
