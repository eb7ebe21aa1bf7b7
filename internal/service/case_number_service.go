package service

import (
	"context"
	"fmt"
	"time"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/repository"
	"go.uber.org/zap"
)

// CaseNumberService issues case codes.
//
// Format: {PREFIX}{YEAR}{SEQUENCE}, the sequence zero-padded to four digits
// and restarting every year. Example: DL20250001
type CaseNumberService struct {
	repo   *repository.CaseSequenceRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewCaseNumberService creates a new CaseNumberService
func NewCaseNumberService(repo *repository.CaseSequenceRepository, logger *zap.Logger) *CaseNumberService {
	return &CaseNumberService{repo: repo, logger: logger, now: time.Now}
}

// Next reserves the next case code for prefix in the current year
func (s *CaseNumberService) Next(ctx context.Context, prefix string) (string, error) {
	year := s.now().Year()

	seq, err := s.repo.NextSequence(ctx, prefix, year)
	if err != nil {
		s.logger.Error("failed to get next case sequence",
			zap.String("prefix", prefix),
			zap.Int("year", year),
			zap.Error(err))
		return "", fmt.Errorf("failed to generate case code: %w", err)
	}

	code := domain.FormatCaseCode(prefix, year, seq)
	s.logger.Debug("generated case code", zap.String("case_id", code))
	return code, nil
}
