package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/datalab-ge/datalab-api/internal/auth"
	"github.com/datalab-ge/datalab-api/internal/cache"
	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/mapper"
	"github.com/datalab-ge/datalab-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AutoArchiveActor is recorded as the author of scheduled archive transitions
const AutoArchiveActor = "system:auto-archive"

type ServiceRequestService struct {
	requestRepo *repository.ServiceRequestRepository
	historyRepo *repository.StatusHistoryRepository
	caseNumbers *CaseNumberService
	cache       cache.Cache
	logger      *zap.Logger
	now         func() time.Time
}

func NewServiceRequestService(
	requestRepo *repository.ServiceRequestRepository,
	historyRepo *repository.StatusHistoryRepository,
	caseNumbers *CaseNumberService,
	c cache.Cache,
	logger *zap.Logger,
) *ServiceRequestService {
	return &ServiceRequestService{
		requestRepo: requestRepo,
		historyRepo: historyRepo,
		caseNumbers: caseNumbers,
		cache:       c,
		logger:      logger,
		now:         time.Now,
	}
}

// Create stores a public submission as a new unread request with a fresh case code
func (s *ServiceRequestService) Create(ctx context.Context, req *domain.CreateServiceRequestRequest) (*domain.CreateServiceRequestResponse, error) {
	urgency := domain.NormalizeUrgency(req.Urgency)
	if !urgency.IsValid() {
		return nil, fmt.Errorf("%w: unknown urgency %q", ErrInvalidInput, req.Urgency)
	}
	if !req.DeviceType.IsValid() {
		return nil, fmt.Errorf("%w: unknown device type %q", ErrInvalidInput, req.DeviceType)
	}

	caseID, err := s.caseNumbers.Next(ctx, domain.CaseCodePrefixService)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	estimated := now.AddDate(0, 0, domain.EstimatedCompletionDays(urgency))

	sr := &domain.ServiceRequest{
		CaseID:              caseID,
		Name:                strings.TrimSpace(req.Name),
		Email:               strings.TrimSpace(req.Email),
		Phone:               strings.TrimSpace(req.Phone),
		DeviceType:          req.DeviceType,
		ProblemDescription:  strings.TrimSpace(req.ProblemDescription),
		Urgency:             urgency,
		Status:              domain.StatusUnread,
		EstimatedCompletion: &estimated,
	}
	history := &domain.ServiceRequestStatusHistory{
		ToStatus:  domain.StatusUnread,
		ChangedBy: auth.Actor(ctx),
		ChangedAt: now,
	}

	if err := s.requestRepo.Create(ctx, sr, history); err != nil {
		return nil, fmt.Errorf("failed to create service request: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, cache.CollectionServiceRequests)

	s.logger.Info("service request created",
		zap.String("case_id", caseID),
		zap.String("device_type", string(sr.DeviceType)),
		zap.String("urgency", string(urgency)))

	return &domain.CreateServiceRequestResponse{
		Success:             true,
		Message:             "Service request created successfully",
		CaseID:              caseID,
		EstimatedCompletion: estimated,
	}, nil
}

// GetCase resolves a case code for public tracking. Codes are matched case-insensitively.
func (s *ServiceRequestService) GetCase(ctx context.Context, caseID string) (*domain.CaseRecord, error) {
	code := strings.ToUpper(strings.TrimSpace(caseID))
	if code == "" {
		return nil, fmt.Errorf("%w: case code is required", ErrInvalidInput)
	}

	sr, err := s.requestRepo.GetByCaseID(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}

	record := mapper.ToCaseRecord(sr)
	return &record, nil
}

// GetByID returns one request by id
func (s *ServiceRequestService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceRequestDTO, error) {
	sr, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToServiceRequestDTO(sr)
	return &dto, nil
}

// ListActive returns every request that is not archived, newest first
func (s *ServiceRequestService) ListActive(ctx context.Context) ([]domain.ServiceRequestDTO, error) {
	return cachedList(ctx, s.cache, s.logger, cache.CollectionServiceRequests, "active", func(ctx context.Context) ([]domain.ServiceRequestDTO, error) {
		requests, err := s.requestRepo.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list service requests: %w", err)
		}
		return mapper.ToServiceRequestDTOs(requests), nil
	})
}

// ListArchived returns archived requests, newest first
func (s *ServiceRequestService) ListArchived(ctx context.Context) ([]domain.ServiceRequestDTO, error) {
	return cachedList(ctx, s.cache, s.logger, cache.CollectionServiceRequests, "archived", func(ctx context.Context) ([]domain.ServiceRequestDTO, error) {
		requests, err := s.requestRepo.ListArchived(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list archived service requests: %w", err)
		}
		return mapper.ToServiceRequestDTOs(requests), nil
	})
}

// Update applies a partial admin update.
//
// A status change must satisfy domain.CanTransition and records a history entry.
// Entering in_progress or completed stamps started_at/completed_at when they are
// unset; explicit timestamps in the request take precedence. Leaving unread marks
// the request read unless is_read is given explicitly.
func (s *ServiceRequestService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateServiceRequestRequest) (*domain.ServiceRequestDTO, error) {
	if !req.HasChanges() {
		return nil, ErrNoChanges
	}

	sr, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if req.StartedAt != nil {
		sr.StartedAt = req.StartedAt
	}
	if req.CompletedAt != nil {
		sr.CompletedAt = req.CompletedAt
	}

	var history *domain.ServiceRequestStatusHistory
	if req.Status != nil && *req.Status != sr.Status {
		from, to := sr.Status, *req.Status
		if !domain.CanTransition(from, to) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
		}
		if from == domain.StatusUnread && req.IsRead == nil {
			sr.IsRead = true
		}
		domain.StampTransition(to, &sr.StartedAt, &sr.CompletedAt, now)
		sr.Status = to
		history = &domain.ServiceRequestStatusHistory{
			FromStatus: &from,
			ToStatus:   to,
			ChangedBy:  auth.Actor(ctx),
			ChangedAt:  now,
		}
	}

	if req.Price != nil {
		sr.Price = req.Price
	}
	if req.IsRead != nil {
		sr.IsRead = *req.IsRead
	}
	if req.EstimatedCompletion != nil {
		sr.EstimatedCompletion = req.EstimatedCompletion
	}

	if err := domain.ValidateTimeline(sr.CreatedAt, sr.StartedAt, sr.CompletedAt, sr.Price); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.requestRepo.Update(ctx, sr, history); err != nil {
		return nil, fmt.Errorf("failed to update service request: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, cache.CollectionServiceRequests)

	if history != nil {
		s.logger.Info("service request status changed",
			zap.String("case_id", sr.CaseID),
			zap.String("from", string(*history.FromStatus)),
			zap.String("to", string(history.ToStatus)),
			zap.String("changed_by", history.ChangedBy))
	}

	dto := mapper.ToServiceRequestDTO(sr)
	return &dto, nil
}

// Archive moves a completed request to the archive
func (s *ServiceRequestService) Archive(ctx context.Context, id uuid.UUID) (*domain.ServiceRequestDTO, error) {
	sr, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sr.Status != domain.StatusCompleted {
		return nil, fmt.Errorf("%w: only completed requests can be archived, status is %s", ErrInvalidTransition, sr.Status)
	}

	if err := s.archive(ctx, sr, auth.Actor(ctx)); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, cache.CollectionServiceRequests)

	dto := mapper.ToServiceRequestDTO(sr)
	return &dto, nil
}

// History returns the status changes of a request, oldest first
func (s *ServiceRequestService) History(ctx context.Context, id uuid.UUID) ([]domain.StatusHistoryDTO, error) {
	if _, err := s.get(ctx, id); err != nil {
		return nil, err
	}
	history, err := s.historyRepo.ListByServiceRequestID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}
	return mapper.ToStatusHistoryDTOs(history), nil
}

// AutoArchive archives every request completed more than olderThan ago and
// returns how many were archived. A failure on one request stops the run.
func (s *ServiceRequestService) AutoArchive(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := s.now().UTC().Add(-olderThan)

	requests, err := s.requestRepo.ListCompletedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list completed service requests: %w", err)
	}

	archived := 0
	for i := range requests {
		if err := s.archive(ctx, &requests[i], AutoArchiveActor); err != nil {
			if archived > 0 {
				invalidate(ctx, s.cache, s.logger, cache.CollectionServiceRequests)
			}
			return archived, err
		}
		archived++
	}

	if archived > 0 {
		invalidate(ctx, s.cache, s.logger, cache.CollectionServiceRequests)
		s.logger.Info("auto-archived completed service requests",
			zap.Int("count", archived),
			zap.Time("cutoff", cutoff))
	}
	return archived, nil
}

func (s *ServiceRequestService) archive(ctx context.Context, sr *domain.ServiceRequest, actor string) error {
	from := sr.Status
	sr.Status = domain.StatusArchived
	history := &domain.ServiceRequestStatusHistory{
		FromStatus: &from,
		ToStatus:   domain.StatusArchived,
		ChangedBy:  actor,
		ChangedAt:  s.now().UTC(),
	}
	if err := s.requestRepo.Update(ctx, sr, history); err != nil {
		sr.Status = from
		return fmt.Errorf("failed to archive service request %s: %w", sr.CaseID, err)
	}
	return nil
}

func (s *ServiceRequestService) get(ctx context.Context, id uuid.UUID) (*domain.ServiceRequest, error) {
	sr, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service request: %w", err)
	}
	return sr, nil
}
