package mapper

import (
	"github.com/datalab-ge/datalab-api/internal/domain"
)

// ToServiceRequestDTO converts ServiceRequest to ServiceRequestDTO
func ToServiceRequestDTO(sr *domain.ServiceRequest) domain.ServiceRequestDTO {
	return domain.ServiceRequestDTO{
		ID:                  sr.ID,
		CaseID:              sr.CaseID,
		Name:                sr.Name,
		Email:               sr.Email,
		Phone:               sr.Phone,
		DeviceType:          sr.DeviceType,
		ProblemDescription:  sr.ProblemDescription,
		Urgency:             sr.Urgency,
		Status:              sr.Status,
		IsRead:              sr.IsRead,
		Price:               sr.Price,
		CreatedAt:           sr.CreatedAt,
		UpdatedAt:           sr.UpdatedAt,
		StartedAt:           sr.StartedAt,
		CompletedAt:         sr.CompletedAt,
		EstimatedCompletion: sr.EstimatedCompletion,
	}
}

// ToServiceRequestDTOs converts a slice of service requests
func ToServiceRequestDTOs(requests []domain.ServiceRequest) []domain.ServiceRequestDTO {
	dtos := make([]domain.ServiceRequestDTO, len(requests))
	for i := range requests {
		dtos[i] = ToServiceRequestDTO(&requests[i])
	}
	return dtos
}

// ToCaseRecord projects a stored request onto the public tracking view
func ToCaseRecord(sr *domain.ServiceRequest) domain.CaseRecord {
	return domain.CaseRecord{
		CaseID:              sr.CaseID,
		Name:                sr.Name,
		DeviceType:          sr.DeviceType,
		ProblemDescription:  sr.ProblemDescription,
		Urgency:             sr.Urgency,
		Status:              sr.Status,
		CreatedAt:           sr.CreatedAt,
		StartedAt:           sr.StartedAt,
		CompletedAt:         sr.CompletedAt,
		EstimatedCompletion: sr.EstimatedCompletion,
		Price:               sr.Price,
		ProgressPercentage:  domain.ProgressPercentage(sr.Status),
	}
}

// ManualTaskToCaseRecord projects a locally stored board task onto the tracking view
func ManualTaskToCaseRecord(task *domain.ManualTask) domain.CaseRecord {
	return domain.CaseRecord{
		CaseID:             task.CaseID,
		Name:               task.Name,
		DeviceType:         task.DeviceType,
		ProblemDescription: task.ProblemDescription,
		Urgency:            task.Urgency,
		Status:             task.Status,
		CreatedAt:          task.CreatedAt,
		StartedAt:          task.StartedAt,
		CompletedAt:        task.CompletedAt,
		Price:              task.Price,
		ProgressPercentage: domain.ProgressPercentage(task.Status),
		IsManual:           true,
	}
}

// ToStatusHistoryDTOs converts status history entries
func ToStatusHistoryDTOs(history []domain.ServiceRequestStatusHistory) []domain.StatusHistoryDTO {
	dtos := make([]domain.StatusHistoryDTO, len(history))
	for i, h := range history {
		dtos[i] = domain.StatusHistoryDTO{
			ID:         h.ID,
			FromStatus: h.FromStatus,
			ToStatus:   h.ToStatus,
			ChangedBy:  h.ChangedBy,
			ChangedAt:  h.ChangedAt,
		}
	}
	return dtos
}

// ToContactMessageDTO converts ContactMessage to ContactMessageDTO
func ToContactMessageDTO(msg *domain.ContactMessage) domain.ContactMessageDTO {
	return domain.ContactMessageDTO{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Subject:   msg.Subject,
		Message:   msg.Message,
		Status:    msg.Status,
		CreatedAt: msg.CreatedAt,
	}
}

// ToContactMessageDTOs converts a slice of contact messages
func ToContactMessageDTOs(messages []domain.ContactMessage) []domain.ContactMessageDTO {
	dtos := make([]domain.ContactMessageDTO, len(messages))
	for i := range messages {
		dtos[i] = ToContactMessageDTO(&messages[i])
	}
	return dtos
}

// ToTestimonialDTO converts Testimonial to TestimonialDTO
func ToTestimonialDTO(t *domain.Testimonial) domain.TestimonialDTO {
	return domain.TestimonialDTO{
		ID:         t.ID,
		Name:       t.Name,
		NameEn:     t.NameEn,
		Position:   t.Position,
		PositionEn: t.PositionEn,
		TextKa:     t.TextKa,
		TextEn:     t.TextEn,
		Rating:     t.Rating,
		Image:      t.Image,
		IsActive:   t.IsActive,
		CreatedAt:  t.CreatedAt,
	}
}

// ToTestimonialDTOs converts a slice of testimonials
func ToTestimonialDTOs(testimonials []domain.Testimonial) []domain.TestimonialDTO {
	dtos := make([]domain.TestimonialDTO, len(testimonials))
	for i := range testimonials {
		dtos[i] = ToTestimonialDTO(&testimonials[i])
	}
	return dtos
}
