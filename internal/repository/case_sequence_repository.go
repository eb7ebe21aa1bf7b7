package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CaseSequenceRepository issues case numbers per prefix and year
type CaseSequenceRepository struct {
	db *gorm.DB
}

func NewCaseSequenceRepository(db *gorm.DB) *CaseSequenceRepository {
	return &CaseSequenceRepository{db: db}
}

// NextSequence atomically increments and returns the sequence for prefix/year.
// The row is locked with SELECT FOR UPDATE; the first call of a year returns 1.
func (r *CaseSequenceRepository) NextSequence(ctx context.Context, prefix string, year int) (int, error) {
	var next int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq domain.CaseSequence
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("prefix = ? AND year = ?", prefix, year).
			First(&seq)

		switch {
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			now := time.Now()
			seq = domain.CaseSequence{
				Prefix:       prefix,
				Year:         year,
				LastSequence: 1,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := tx.Create(&seq).Error; err != nil {
				return fmt.Errorf("failed to create case sequence: %w", err)
			}
			next = 1
		case result.Error != nil:
			return fmt.Errorf("failed to get case sequence: %w", result.Error)
		default:
			next = seq.LastSequence + 1
			if err := tx.Model(&domain.CaseSequence{}).
				Where("prefix = ? AND year = ?", prefix, year).
				Updates(map[string]interface{}{
					"last_sequence": next,
					"updated_at":    time.Now(),
				}).Error; err != nil {
				return fmt.Errorf("failed to update case sequence: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return next, nil
}

// CurrentSequence returns the last issued number without incrementing; 0 if none
func (r *CaseSequenceRepository) CurrentSequence(ctx context.Context, prefix string, year int) (int, error) {
	var seq domain.CaseSequence
	result := r.db.WithContext(ctx).
		Where("prefix = ? AND year = ?", prefix, year).
		First(&seq)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if result.Error != nil {
		return 0, fmt.Errorf("failed to get case sequence: %w", result.Error)
	}
	return seq.LastSequence, nil
}
