package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case code prefixes
const (
	CaseCodePrefixService = "DL"
	CaseCodePrefixManual  = "KB"
)

// FormatCaseCode renders a case code such as DL20250001
func FormatCaseCode(prefix string, year, sequence int) string {
	return fmt.Sprintf("%s%d%04d", prefix, year, sequence)
}

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns an id when the caller did not
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// ServiceRequest is a customer's data-recovery job
type ServiceRequest struct {
	BaseModel
	CaseID              string               `gorm:"type:varchar(20);not null;uniqueIndex;column:case_id"`
	Name                string               `gorm:"type:varchar(100);not null"`
	Email               string               `gorm:"type:varchar(255);not null"`
	Phone               string               `gorm:"type:varchar(20);not null"`
	DeviceType          DeviceType           `gorm:"type:varchar(20);not null;column:device_type"`
	ProblemDescription  string               `gorm:"type:text;not null;column:problem_description"`
	Urgency             Urgency              `gorm:"type:varchar(20);not null;default:'medium'"`
	Status              ServiceRequestStatus `gorm:"type:varchar(20);not null;default:'unread';index"`
	IsRead              bool                 `gorm:"not null;default:false;column:is_read"`
	Price               *float64             `gorm:"type:numeric(10,2)"`
	StartedAt           *time.Time           `gorm:"column:started_at"`
	CompletedAt         *time.Time           `gorm:"column:completed_at"`
	EstimatedCompletion *time.Time           `gorm:"column:estimated_completion"`
}

// ServiceRequestStatusHistory records every status change of a service request
type ServiceRequestStatusHistory struct {
	ID               uuid.UUID             `gorm:"type:uuid;primaryKey"`
	ServiceRequestID uuid.UUID             `gorm:"type:uuid;not null;index;column:service_request_id"`
	FromStatus       *ServiceRequestStatus `gorm:"type:varchar(20);column:from_status"`
	ToStatus         ServiceRequestStatus  `gorm:"type:varchar(20);not null;column:to_status"`
	ChangedBy        string                `gorm:"type:varchar(100);not null;column:changed_by"`
	ChangedAt        time.Time             `gorm:"not null;column:changed_at"`
}

// TableName overrides the default table name to match the migration
func (ServiceRequestStatusHistory) TableName() string {
	return "service_request_status_history"
}

// BeforeCreate assigns an id when the caller did not
func (h *ServiceRequestStatusHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// CaseSequence holds the last issued case number per prefix and year
type CaseSequence struct {
	Prefix       string    `gorm:"type:varchar(10);primaryKey"`
	Year         int       `gorm:"primaryKey"`
	LastSequence int       `gorm:"not null;default:0;column:last_sequence"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// ContactMessage is a message submitted through the public contact form
type ContactMessage struct {
	BaseModel
	Name    string               `gorm:"type:varchar(100);not null"`
	Email   string               `gorm:"type:varchar(255);not null"`
	Phone   *string              `gorm:"type:varchar(20)"`
	Subject string               `gorm:"type:varchar(200);not null"`
	Message string               `gorm:"type:text;not null"`
	Status  ContactMessageStatus `gorm:"type:varchar(20);not null;default:'new';index"`
}

// Testimonial is a bilingual customer quote shown on the public site
type Testimonial struct {
	BaseModel
	Name       string  `gorm:"type:varchar(100);not null"`
	NameEn     string  `gorm:"type:varchar(100);not null;column:name_en"`
	Position   string  `gorm:"type:varchar(100);not null"`
	PositionEn string  `gorm:"type:varchar(100);not null;column:position_en"`
	TextKa     string  `gorm:"type:text;not null;column:text_ka"`
	TextEn     string  `gorm:"type:text;not null;column:text_en"`
	Rating     int     `gorm:"not null;default:5"`
	Image      *string `gorm:"type:varchar(500)"`
	ImagePath  string  `gorm:"type:varchar(500);column:image_path"`
	IsActive   bool    `gorm:"not null;default:true;column:is_active;index"`
}

// ManualTask is a ticket created on the Kanban board that only lives in the local store
type ManualTask struct {
	ID                 string               `gorm:"type:varchar(40);primaryKey" json:"id"`
	CaseID             string               `gorm:"type:varchar(20);not null;uniqueIndex;column:case_id" json:"case_id"`
	Name               string               `gorm:"type:varchar(100);not null" json:"name"`
	Email              string               `gorm:"type:varchar(255)" json:"email"`
	Phone              string               `gorm:"type:varchar(20)" json:"phone"`
	DeviceType         DeviceType           `gorm:"type:varchar(20);column:device_type" json:"device_type"`
	ProblemDescription string               `gorm:"type:text;column:problem_description" json:"problem_description"`
	Urgency            Urgency              `gorm:"type:varchar(20)" json:"urgency"`
	Status             ServiceRequestStatus `gorm:"type:varchar(20);not null" json:"status"`
	Price              *float64             `json:"price"`
	CreatedAt          time.Time            `gorm:"not null" json:"created_at"`
	StartedAt          *time.Time           `json:"started_at"`
	CompletedAt        *time.Time           `json:"completed_at"`
}

// TableName keeps the historical storage key of manual board tasks
func (ManualTask) TableName() string {
	return "kanban_manual_tasks"
}
