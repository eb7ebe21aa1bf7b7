// Package testutil holds shared fixtures for package-level tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/datalab-ge/datalab-api/internal/config"
	"github.com/datalab-ge/datalab-api/internal/database"
	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SetupTestDB opens a private in-memory SQLite database with the full schema.
// The database disappears when the test finishes.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewDatabase(&config.DatabaseConfig{
		Driver:       database.DriverSQLite,
		Path:         fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

// CreateServiceRequest inserts a service request with sensible defaults; mutate may adjust it first
func CreateServiceRequest(t *testing.T, db *gorm.DB, caseID string, status domain.ServiceRequestStatus, mutate ...func(*domain.ServiceRequest)) *domain.ServiceRequest {
	t.Helper()

	sr := &domain.ServiceRequest{
		CaseID:             caseID,
		Name:               "Nino Beridze",
		Email:              "nino@example.ge",
		Phone:              "+995555123456",
		DeviceType:         domain.DeviceHDD,
		ProblemDescription: "Drive clicks and is not detected",
		Urgency:            domain.UrgencyMedium,
		Status:             status,
	}
	for _, m := range mutate {
		m(sr)
	}
	require.NoError(t, db.Create(sr).Error)
	return sr
}

// CreateContactMessage inserts a contact message with the given status
func CreateContactMessage(t *testing.T, db *gorm.DB, subject string, status domain.ContactMessageStatus) *domain.ContactMessage {
	t.Helper()

	msg := &domain.ContactMessage{
		Name:    "Giorgi Kapanadze",
		Email:   "giorgi@example.ge",
		Subject: subject,
		Message: "My laptop SSD stopped working yesterday.",
		Status:  status,
	}
	require.NoError(t, db.Create(msg).Error)
	return msg
}

// CreateTestimonial inserts a testimonial
func CreateTestimonial(t *testing.T, db *gorm.DB, name string, rating int, active bool) *domain.Testimonial {
	t.Helper()

	tm := &domain.Testimonial{
		Name:       name,
		NameEn:     name,
		Position:   "მენეჯერი",
		PositionEn: "Manager",
		TextKa:     "ძალიან კარგი სერვისი, ყველა ფაილი აღადგინეს.",
		TextEn:     "Great service, every file was recovered.",
		Rating:     rating,
		IsActive:   true,
	}
	require.NoError(t, db.Create(tm).Error)
	if !active {
		// gorm skips zero-value bools on create when a default is declared
		require.NoError(t, db.Model(tm).Update("is_active", false).Error)
		tm.IsActive = false
	}
	return tm
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

// Date builds a UTC timestamp
func Date(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}
