package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/datalab-ge/datalab-api/internal/cache"
	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/mapper"
	"github.com/datalab-ge/datalab-api/internal/repository"
	"github.com/datalab-ge/datalab-api/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	testimonialImageFolder = "testimonials"
	defaultRating          = 5
)

// allowedImageTypes maps accepted upload content types to a file extension
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// TestimonialImageURL is the public path an uploaded testimonial photo is served from
func TestimonialImageURL(id uuid.UUID) string {
	return "/api/testimonials/" + id.String() + "/image"
}

type TestimonialService struct {
	repo    *repository.TestimonialRepository
	storage storage.Storage
	cache   cache.Cache
	logger  *zap.Logger
}

func NewTestimonialService(repo *repository.TestimonialRepository, store storage.Storage, c cache.Cache, logger *zap.Logger) *TestimonialService {
	return &TestimonialService{repo: repo, storage: store, cache: c, logger: logger}
}

// ListActive returns the testimonials shown on the public site
func (s *TestimonialService) ListActive(ctx context.Context) ([]domain.TestimonialDTO, error) {
	return s.list(ctx, true)
}

// ListAll returns active and deactivated testimonials
func (s *TestimonialService) ListAll(ctx context.Context) ([]domain.TestimonialDTO, error) {
	return s.list(ctx, false)
}

func (s *TestimonialService) list(ctx context.Context, activeOnly bool) ([]domain.TestimonialDTO, error) {
	field := "all"
	if activeOnly {
		field = "active"
	}
	return cachedList(ctx, s.cache, s.logger, cache.CollectionTestimonials, field, func(ctx context.Context) ([]domain.TestimonialDTO, error) {
		testimonials, err := s.repo.List(ctx, activeOnly)
		if err != nil {
			return nil, fmt.Errorf("failed to list testimonials: %w", err)
		}
		return mapper.ToTestimonialDTOs(testimonials), nil
	})
}

// Create adds an active testimonial
func (s *TestimonialService) Create(ctx context.Context, req *domain.CreateTestimonialRequest) (*domain.TestimonialDTO, error) {
	rating := defaultRating
	if req.Rating != nil {
		rating = *req.Rating
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	t := &domain.Testimonial{
		Name:       req.Name,
		NameEn:     req.NameEn,
		Position:   req.Position,
		PositionEn: req.PositionEn,
		TextKa:     req.TextKa,
		TextEn:     req.TextEn,
		Rating:     rating,
		Image:      req.Image,
		IsActive:   true,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, cache.CollectionTestimonials)

	dto := mapper.ToTestimonialDTO(t)
	return &dto, nil
}

// Update applies a partial update. Deactivation only flips is_active and is reversible.
func (s *TestimonialService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateTestimonialRequest) (*domain.TestimonialDTO, error) {
	if !req.HasChanges() {
		return nil, ErrNoChanges
	}

	t, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.NameEn != nil {
		t.NameEn = *req.NameEn
	}
	if req.Position != nil {
		t.Position = *req.Position
	}
	if req.PositionEn != nil {
		t.PositionEn = *req.PositionEn
	}
	if req.TextKa != nil {
		t.TextKa = *req.TextKa
	}
	if req.TextEn != nil {
		t.TextEn = *req.TextEn
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
		}
		t.Rating = *req.Rating
	}
	if req.Image != nil {
		t.Image = req.Image
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, cache.CollectionTestimonials)

	dto := mapper.ToTestimonialDTO(t)
	return &dto, nil
}

// UploadImage stores a photo for a testimonial and points its image URL at it.
// A previously uploaded photo is removed.
func (s *TestimonialService) UploadImage(ctx context.Context, id uuid.UUID, filename, contentType string, data io.Reader) (*domain.TestimonialDTO, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidImage, contentType)
	}
	ext, ok := allowedImageTypes[strings.ToLower(mediaType)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidImage, mediaType)
	}

	t, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if path.Ext(filename) == "" {
		filename += ext
	}
	obj, err := s.storage.Upload(ctx, testimonialImageFolder, filename, mediaType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store testimonial image: %w", err)
	}

	previous := t.ImagePath
	url := TestimonialImageURL(t.ID)
	t.ImagePath = obj.Path
	t.Image = &url

	if err := s.repo.Update(ctx, t); err != nil {
		_ = s.storage.Delete(ctx, obj.Path)
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}
	invalidate(ctx, s.cache, s.logger, cache.CollectionTestimonials)

	if previous != "" && previous != obj.Path {
		if err := s.storage.Delete(ctx, previous); err != nil {
			s.logger.Warn("failed to delete previous testimonial image",
				zap.String("path", previous),
				zap.Error(err))
		}
	}

	s.logger.Info("testimonial image uploaded",
		zap.String("testimonial_id", t.ID.String()),
		zap.String("path", obj.Path),
		zap.Int64("size", obj.Size))

	dto := mapper.ToTestimonialDTO(t)
	return &dto, nil
}

// OpenImage returns the uploaded photo of a testimonial and its content type.
// The caller closes the reader.
func (s *TestimonialService) OpenImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error) {
	t, err := s.get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if t.ImagePath == "" {
		return nil, "", ErrNotFound
	}

	rc, err := s.storage.Download(ctx, t.ImagePath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to open testimonial image: %w", err)
	}

	contentType := mime.TypeByExtension(path.Ext(t.ImagePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return rc, contentType, nil
}

func (s *TestimonialService) get(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}
	return t, nil
}
