package service

import (
	"context"
	"time"

	"github.com/datalab-ge/datalab-api/internal/analytics"
	"github.com/datalab-ge/datalab-api/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AnalyticsService computes dashboard metrics over active and archived requests
type AnalyticsService struct {
	requests     *ServiceRequestService
	testimonials *TestimonialService
	logger       *zap.Logger
	now          func() time.Time
}

func NewAnalyticsService(requests *ServiceRequestService, testimonials *TestimonialService, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{requests: requests, testimonials: testimonials, logger: logger, now: time.Now}
}

// Report loads the collections concurrently and computes metrics for tf
func (s *AnalyticsService) Report(ctx context.Context, tf analytics.Timeframe) (*analytics.Report, error) {
	var active, archived []domain.ServiceRequestDTO
	var testimonials []domain.TestimonialDTO

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		active, err = s.requests.ListActive(gctx)
		return err
	})
	g.Go(func() (err error) {
		archived, err = s.requests.ListArchived(gctx)
		return err
	})
	g.Go(func() (err error) {
		testimonials, err = s.testimonials.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make([]domain.ServiceRequestDTO, 0, len(active)+len(archived))
	all = append(all, active...)
	all = append(all, archived...)

	report := analytics.Compute(all, testimonials, tf, s.now())
	s.logger.Debug("analytics computed",
		zap.String("timeframe", string(tf)),
		zap.Int("requests", len(all)),
		zap.Int("total_cases", report.Metrics.TotalCases))
	return &report, nil
}
