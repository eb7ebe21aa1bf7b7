// Package admin loads the admin collections in one batch and applies mutations
// with a full reload afterwards.
package admin

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// API is the part of the REST client the controller needs
type API interface {
	ListServiceRequests(ctx context.Context) ([]domain.ServiceRequestDTO, error)
	ListArchivedServiceRequests(ctx context.Context) ([]domain.ServiceRequestDTO, error)
	ListContactMessages(ctx context.Context) ([]domain.ContactMessageDTO, error)
	ListAllTestimonials(ctx context.Context) ([]domain.TestimonialDTO, error)
	ContactStats(ctx context.Context) (*domain.ContactStatsDTO, error)

	UpdateServiceRequest(ctx context.Context, id uuid.UUID, req *domain.UpdateServiceRequestRequest) (*domain.ServiceRequestDTO, error)
	ArchiveServiceRequest(ctx context.Context, id uuid.UUID) (*domain.ServiceRequestDTO, error)
	UpdateContactStatus(ctx context.Context, id uuid.UUID, status domain.ContactMessageStatus) error
	UpdateTestimonial(ctx context.Context, id uuid.UUID, req *domain.UpdateTestimonialRequest) (*domain.TestimonialDTO, error)
}

// Snapshot is the result of one complete batch load
type Snapshot struct {
	ServiceRequests  []domain.ServiceRequestDTO
	ArchivedRequests []domain.ServiceRequestDTO
	ContactMessages  []domain.ContactMessageDTO
	Testimonials     []domain.TestimonialDTO
	ContactStats     domain.ContactStatsDTO
	LoadedAt         time.Time
}

// Controller owns the current snapshot. A snapshot is replaced only as a whole.
// Overlapping refreshes are not serialized; the last one to finish wins.
type Controller struct {
	api      API
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time

	snapshot atomic.Pointer[Snapshot]
}

func NewController(api API, notifier Notifier, logger *zap.Logger) *Controller {
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}
	return &Controller{api: api, notifier: notifier, logger: logger, now: time.Now}
}

// Snapshot returns the last successful load, or nil before the first one
func (c *Controller) Snapshot() *Snapshot {
	return c.snapshot.Load()
}

// Refresh fetches all collections concurrently. If any fetch fails the previous
// snapshot is kept and a single failure notification is sent.
func (c *Controller) Refresh(ctx context.Context) error {
	var next Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := c.api.ListServiceRequests(gctx)
		if err != nil {
			return fmt.Errorf("service requests: %w", err)
		}
		next.ServiceRequests = list
		return nil
	})
	g.Go(func() error {
		list, err := c.api.ListArchivedServiceRequests(gctx)
		if err != nil {
			return fmt.Errorf("archived service requests: %w", err)
		}
		next.ArchivedRequests = list
		return nil
	})
	g.Go(func() error {
		list, err := c.api.ListContactMessages(gctx)
		if err != nil {
			return fmt.Errorf("contact messages: %w", err)
		}
		next.ContactMessages = list
		return nil
	})
	g.Go(func() error {
		list, err := c.api.ListAllTestimonials(gctx)
		if err != nil {
			return fmt.Errorf("testimonials: %w", err)
		}
		next.Testimonials = list
		return nil
	})
	g.Go(func() error {
		stats, err := c.api.ContactStats(gctx)
		if err != nil {
			return fmt.Errorf("contact stats: %w", err)
		}
		next.ContactStats = *stats
		return nil
	})

	if err := g.Wait(); err != nil {
		c.notifier.Failure("Failed to load data", err)
		return fmt.Errorf("failed to refresh: %w", err)
	}

	next.LoadedAt = c.now()
	c.snapshot.Store(&next)
	c.logger.Debug("admin data refreshed",
		zap.Int("service_requests", len(next.ServiceRequests)),
		zap.Int("archived", len(next.ArchivedRequests)),
		zap.Int("contact_messages", len(next.ContactMessages)),
		zap.Int("testimonials", len(next.Testimonials)))
	return nil
}

// mutate runs fn once. Success is followed by a full refresh; failure leaves the snapshot alone.
func (c *Controller) mutate(ctx context.Context, success, failure string, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		c.notifier.Failure(failure, err)
		return err
	}
	c.notifier.Success(success)

	if err := c.Refresh(ctx); err != nil {
		return fmt.Errorf("change saved but reload failed: %w", err)
	}
	return nil
}

func (c *Controller) updateRequest(ctx context.Context, id uuid.UUID, req *domain.UpdateServiceRequestRequest, success, failure string) error {
	return c.mutate(ctx, success, failure, func(ctx context.Context) error {
		_, err := c.api.UpdateServiceRequest(ctx, id, req)
		return err
	})
}

// UpdateStatus sets the status of a service request
func (c *Controller) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ServiceRequestStatus) error {
	return c.updateRequest(ctx, id, &domain.UpdateServiceRequestRequest{Status: &status},
		"Status updated", "Failed to update status")
}

func (c *Controller) UpdatePrice(ctx context.Context, id uuid.UUID, price float64) error {
	return c.updateRequest(ctx, id, &domain.UpdateServiceRequestRequest{Price: &price},
		"Price updated", "Failed to update price")
}

func (c *Controller) MarkRead(ctx context.Context, id uuid.UUID, read bool) error {
	return c.updateRequest(ctx, id, &domain.UpdateServiceRequestRequest{IsRead: &read},
		"Read flag updated", "Failed to update read flag")
}

// Archive moves a completed request to the archive
func (c *Controller) Archive(ctx context.Context, id uuid.UUID) error {
	return c.mutate(ctx, "Request archived", "Failed to archive request", func(ctx context.Context) error {
		_, err := c.api.ArchiveServiceRequest(ctx, id)
		return err
	})
}

func (c *Controller) UpdateTestimonial(ctx context.Context, id uuid.UUID, req *domain.UpdateTestimonialRequest) error {
	return c.mutate(ctx, "Testimonial updated", "Failed to update testimonial", func(ctx context.Context) error {
		_, err := c.api.UpdateTestimonial(ctx, id, req)
		return err
	})
}

// SetTestimonialActive hides or re-publishes a testimonial; it is never deleted
func (c *Controller) SetTestimonialActive(ctx context.Context, id uuid.UUID, active bool) error {
	success := "Testimonial deactivated"
	if active {
		success = "Testimonial activated"
	}
	return c.mutate(ctx, success, "Failed to update testimonial", func(ctx context.Context) error {
		_, err := c.api.UpdateTestimonial(ctx, id, &domain.UpdateTestimonialRequest{IsActive: &active})
		return err
	})
}

func (c *Controller) UpdateMessageStatus(ctx context.Context, id uuid.UUID, status domain.ContactMessageStatus) error {
	return c.mutate(ctx, "Message status updated", "Failed to update message status", func(ctx context.Context) error {
		return c.api.UpdateContactStatus(ctx, id, status)
	})
}
