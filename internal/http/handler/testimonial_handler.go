package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/service"
	"go.uber.org/zap"
)

// TestimonialHandler handles HTTP requests for testimonials
type TestimonialHandler struct {
	service       *service.TestimonialService
	maxUploadSize int64
	logger        *zap.Logger
}

// NewTestimonialHandler creates a new TestimonialHandler; maxUploadSizeMB bounds image uploads
func NewTestimonialHandler(svc *service.TestimonialService, maxUploadSizeMB int64, logger *zap.Logger) *TestimonialHandler {
	return &TestimonialHandler{service: svc, maxUploadSize: maxUploadSizeMB << 20, logger: logger}
}

// ListActive godoc
// @Summary List published testimonials
// @Tags Testimonials
// @Produce json
// @Success 200 {array} domain.TestimonialDTO
// @Router /testimonials/ [get]
func (h *TestimonialHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.service.ListActive(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "", "Failed to list testimonials")
		return
	}
	respondJSON(w, http.StatusOK, testimonials)
}

// ListAll godoc
// @Summary List all testimonials
// @Description Includes deactivated testimonials
// @Tags Testimonials
// @Produce json
// @Success 200 {array} domain.TestimonialDTO
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /testimonials/all [get]
func (h *TestimonialHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.service.ListAll(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "", "Failed to list testimonials")
		return
	}
	respondJSON(w, http.StatusOK, testimonials)
}

// Create godoc
// @Summary Create testimonial
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param request body domain.CreateTestimonialRequest true "Testimonial"
// @Success 201 {object} domain.TestimonialDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /testimonials/ [post]
func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTestimonialRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	dto, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "", "Failed to create testimonial")
		return
	}
	respondJSON(w, http.StatusCreated, dto)
}

// Update godoc
// @Summary Update testimonial
// @Description Partial update; set is_active to false to hide a testimonial without deleting it
// @Tags Testimonials
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param request body domain.UpdateTestimonialRequest true "Fields to change"
// @Success 200 {object} domain.TestimonialDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /testimonials/{id} [put]
func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "testimonial")
	if !ok {
		return
	}

	var req domain.UpdateTestimonialRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	dto, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Testimonial not found", "Failed to update testimonial")
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// UploadImage godoc
// @Summary Upload testimonial photo
// @Tags Testimonials
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param file formData file true "JPEG, PNG or WebP image"
// @Success 200 {object} domain.TestimonialDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 413 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /testimonials/{id}/image [put]
func (h *TestimonialHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "testimonial")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, http.StatusRequestEntityTooLarge, "Image exceeds the maximum upload size")
			return
		}
		respondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	dto, err := h.service.UploadImage(r.Context(), id, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		respondServiceError(w, h.logger, err, "Testimonial not found", "Failed to upload image")
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// Image godoc
// @Summary Download testimonial photo
// @Tags Testimonials
// @Produce image/jpeg,image/png,image/webp
// @Param id path string true "Testimonial ID"
// @Success 200 {file} binary
// @Failure 404 {object} domain.APIError
// @Router /testimonials/{id}/image [get]
func (h *TestimonialHandler) Image(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "testimonial")
	if !ok {
		return
	}

	rc, contentType, err := h.service.OpenImage(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Image not found", "Failed to load image")
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Warn("failed to stream testimonial image", zap.String("testimonial_id", id.String()), zap.Error(err))
	}
}
