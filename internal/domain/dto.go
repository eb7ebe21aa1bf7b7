package domain

import (
	"time"

	"github.com/google/uuid"
)

// DTOs for API requests and responses. JSON field names are snake_case to
// stay wire-compatible with the public site and existing admin clients.

// ServiceRequestDTO is the admin view of a service request
type ServiceRequestDTO struct {
	ID                  uuid.UUID            `json:"id"`
	CaseID              string               `json:"case_id"`
	Name                string               `json:"name"`
	Email               string               `json:"email"`
	Phone               string               `json:"phone"`
	DeviceType          DeviceType           `json:"device_type"`
	ProblemDescription  string               `json:"problem_description"`
	Urgency             Urgency              `json:"urgency"`
	Status              ServiceRequestStatus `json:"status"`
	IsRead              bool                 `json:"is_read"`
	Price               *float64             `json:"price"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
	StartedAt           *time.Time           `json:"started_at"`
	CompletedAt         *time.Time           `json:"completed_at"`
	EstimatedCompletion *time.Time           `json:"estimated_completion,omitempty"`
}

// CreateServiceRequestRequest is the public service-request form
type CreateServiceRequestRequest struct {
	Name               string     `json:"name" validate:"required,min=2,max=100"`
	Email              string     `json:"email" validate:"required,email"`
	Phone              string     `json:"phone" validate:"required,min=9,max=20"`
	DeviceType         DeviceType `json:"device_type" validate:"required,oneof=hdd ssd raid usb sd memory_card server other"`
	ProblemDescription string     `json:"problem_description" validate:"required,min=10,max=1000"`
	Urgency            string     `json:"urgency" validate:"omitempty,oneof=low medium high critical normal urgent emergency"`
}

// CreateServiceRequestResponse is returned after a successful public submission
type CreateServiceRequestResponse struct {
	Success             bool      `json:"success"`
	Message             string    `json:"message"`
	CaseID              string    `json:"case_id"`
	EstimatedCompletion time.Time `json:"estimated_completion"`
}

// UpdateServiceRequestRequest is a partial admin update; nil fields are left untouched
type UpdateServiceRequestRequest struct {
	Status              *ServiceRequestStatus `json:"status,omitempty" validate:"omitempty,oneof=unread pending in_progress completed archived"`
	Price               *float64              `json:"price,omitempty" validate:"omitempty,gte=0"`
	IsRead              *bool                 `json:"is_read,omitempty"`
	StartedAt           *time.Time            `json:"started_at,omitempty"`
	CompletedAt         *time.Time            `json:"completed_at,omitempty"`
	EstimatedCompletion *time.Time            `json:"estimated_completion,omitempty"`
}

// HasChanges reports whether the update carries at least one field
func (r *UpdateServiceRequestRequest) HasChanges() bool {
	return r.Status != nil || r.Price != nil || r.IsRead != nil ||
		r.StartedAt != nil || r.CompletedAt != nil || r.EstimatedCompletion != nil
}

// CaseRecord is the public, read-only projection used by case tracking
type CaseRecord struct {
	CaseID              string               `json:"case_id"`
	Name                string               `json:"name"`
	DeviceType          DeviceType           `json:"device_type"`
	ProblemDescription  string               `json:"problem_description"`
	Urgency             Urgency              `json:"urgency"`
	Status              ServiceRequestStatus `json:"status"`
	CreatedAt           time.Time            `json:"created_at"`
	StartedAt           *time.Time           `json:"started_at"`
	CompletedAt         *time.Time           `json:"completed_at"`
	EstimatedCompletion *time.Time           `json:"estimated_completion,omitempty"`
	Price               *float64             `json:"price"`
	ProgressPercentage  int                  `json:"progress_percentage"`
	IsManual            bool                 `json:"is_manual,omitempty"`
}

// StatusHistoryDTO is one recorded status change
type StatusHistoryDTO struct {
	ID         uuid.UUID             `json:"id"`
	FromStatus *ServiceRequestStatus `json:"from_status"`
	ToStatus   ServiceRequestStatus  `json:"to_status"`
	ChangedBy  string                `json:"changed_by"`
	ChangedAt  time.Time             `json:"changed_at"`
}

// ContactMessageDTO is the admin view of a contact message
type ContactMessageDTO struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Phone     *string              `json:"phone"`
	Subject   string               `json:"subject"`
	Message   string               `json:"message"`
	Status    ContactMessageStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

// CreateContactMessageRequest is the public contact form
type CreateContactMessageRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Subject string  `json:"subject" validate:"required,max=200"`
	Message string  `json:"message" validate:"required,min=10,max=2000"`
}

// ContactMessageReceipt acknowledges a contact form submission
type ContactMessageReceipt struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// UpdateContactStatusRequest changes the handling state of a message
type UpdateContactStatusRequest struct {
	Status ContactMessageStatus `json:"status" validate:"required,oneof=new read replied"`
}

// ContactStatsDTO counts contact messages per status
type ContactStatsDTO struct {
	Total   int64 `json:"total"`
	New     int64 `json:"new"`
	Read    int64 `json:"read"`
	Replied int64 `json:"replied"`
}

// TestimonialDTO is a testimonial as shown to admins and the public site
type TestimonialDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	NameEn     string    `json:"name_en"`
	Position   string    `json:"position"`
	PositionEn string    `json:"position_en"`
	TextKa     string    `json:"text_ka"`
	TextEn     string    `json:"text_en"`
	Rating     int       `json:"rating"`
	Image      *string   `json:"image"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateTestimonialRequest creates a testimonial; rating defaults to 5
type CreateTestimonialRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	NameEn     string  `json:"name_en" validate:"required,min=2,max=100"`
	Position   string  `json:"position" validate:"required,min=2,max=100"`
	PositionEn string  `json:"position_en" validate:"required,min=2,max=100"`
	TextKa     string  `json:"text_ka" validate:"required,min=10,max=500"`
	TextEn     string  `json:"text_en" validate:"required,min=10,max=500"`
	Rating     *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Image      *string `json:"image,omitempty" validate:"omitempty,url"`
}

// UpdateTestimonialRequest is a partial update; nil fields are left untouched
type UpdateTestimonialRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	NameEn     *string `json:"name_en,omitempty" validate:"omitempty,min=2,max=100"`
	Position   *string `json:"position,omitempty" validate:"omitempty,min=2,max=100"`
	PositionEn *string `json:"position_en,omitempty" validate:"omitempty,min=2,max=100"`
	TextKa     *string `json:"text_ka,omitempty" validate:"omitempty,min=10,max=500"`
	TextEn     *string `json:"text_en,omitempty" validate:"omitempty,min=10,max=500"`
	Rating     *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Image      *string `json:"image,omitempty" validate:"omitempty,url"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// HasChanges reports whether the update carries at least one field
func (r *UpdateTestimonialRequest) HasChanges() bool {
	return r.Name != nil || r.NameEn != nil || r.Position != nil || r.PositionEn != nil ||
		r.TextKa != nil || r.TextEn != nil || r.Rating != nil || r.Image != nil || r.IsActive != nil
}

// TokenRequest exchanges the admin API key for a session token
type TokenRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

// TokenResponse carries a signed admin session token
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse reports service health
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
}
