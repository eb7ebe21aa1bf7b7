package mapper_test

import (
	"testing"
	"time"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/mapper"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToCaseRecord(t *testing.T) {
	now := time.Now()
	price := 180.0
	sr := &domain.ServiceRequest{
		BaseModel:          domain.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		CaseID:             "DL20250012",
		Name:               "Tamar",
		Email:              "tamar@example.ge",
		Phone:              "599000111",
		DeviceType:         domain.DeviceRAID,
		ProblemDescription: "Two disks failed in a RAID 5 array",
		Urgency:            domain.UrgencyCritical,
		Status:             domain.StatusInProgress,
		Price:              &price,
		StartedAt:          &now,
	}

	rec := mapper.ToCaseRecord(sr)

	assert.Equal(t, "DL20250012", rec.CaseID)
	assert.Equal(t, sr.Name, rec.Name)
	assert.Equal(t, domain.DeviceRAID, rec.DeviceType)
	assert.Equal(t, 50, rec.ProgressPercentage)
	assert.Equal(t, &price, rec.Price)
	assert.False(t, rec.IsManual)
}

func TestManualTaskToCaseRecord(t *testing.T) {
	task := &domain.ManualTask{
		ID:        "manual_1",
		CaseID:    "KB20251234",
		Name:      "Walk-in customer",
		Status:    domain.StatusCompleted,
		CreatedAt: time.Now(),
	}

	rec := mapper.ManualTaskToCaseRecord(task)

	assert.Equal(t, "KB20251234", rec.CaseID)
	assert.Equal(t, 75, rec.ProgressPercentage)
	assert.True(t, rec.IsManual)
}

func TestToTestimonialDTOs(t *testing.T) {
	list := []domain.Testimonial{
		{Name: "ა", Rating: 5, IsActive: true},
		{Name: "ბ", Rating: 3, IsActive: false},
	}

	dtos := mapper.ToTestimonialDTOs(list)

	assert.Len(t, dtos, 2)
	assert.Equal(t, 3, dtos[1].Rating)
	assert.False(t, dtos[1].IsActive)
	assert.Empty(t, mapper.ToTestimonialDTOs(nil))
}
