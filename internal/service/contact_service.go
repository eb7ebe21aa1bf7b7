package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/datalab-ge/datalab-api/internal/cache"
	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/mapper"
	"github.com/datalab-ge/datalab-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContactReceivedStatus is reported back to the sender of a contact form
const ContactReceivedStatus = "received"

type ContactService struct {
	repo   *repository.ContactMessageRepository
	cache  cache.Cache
	logger *zap.Logger
}

func NewContactService(repo *repository.ContactMessageRepository, c cache.Cache, logger *zap.Logger) *ContactService {
	return &ContactService{repo: repo, cache: c, logger: logger}
}

// Create stores a message from the public contact form with status new
func (s *ContactService) Create(ctx context.Context, req *domain.CreateContactMessageRequest) (*domain.ContactMessageReceipt, error) {
	msg := &domain.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   req.Phone,
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
		Status:  domain.ContactStatusNew,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, cache.CollectionContact)

	s.logger.Info("contact message received", zap.String("id", msg.ID.String()))

	return &domain.ContactMessageReceipt{
		ID:        msg.ID,
		Status:    ContactReceivedStatus,
		Timestamp: msg.CreatedAt,
	}, nil
}

// List returns every message, newest first
func (s *ContactService) List(ctx context.Context) ([]domain.ContactMessageDTO, error) {
	return cachedList(ctx, s.cache, s.logger, cache.CollectionContact, "all", func(ctx context.Context) ([]domain.ContactMessageDTO, error) {
		messages, err := s.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list contact messages: %w", err)
		}
		return mapper.ToContactMessageDTOs(messages), nil
	})
}

// UpdateStatus sets the handling state; any known state may follow any other
func (s *ContactService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ContactMessageStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown contact status %q", ErrInvalidInput, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update contact message status: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, cache.CollectionContact)
	return nil
}

// Stats counts messages per status
func (s *ContactService) Stats(ctx context.Context) (*domain.ContactStatsDTO, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count contact messages: %w", err)
	}

	stats := &domain.ContactStatsDTO{
		New:     counts[domain.ContactStatusNew],
		Read:    counts[domain.ContactStatusRead],
		Replied: counts[domain.ContactStatusReplied],
	}
	for _, c := range counts {
		stats.Total += c
	}
	return stats, nil
}
