package domain_test

import (
	"testing"
	"time"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

// =============================================================================
// ServiceRequestStatus transitions
// =============================================================================

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     domain.ServiceRequestStatus
		to       domain.ServiceRequestStatus
		expected bool
	}{
		{"unread to pending", domain.StatusUnread, domain.StatusPending, true},
		{"pending to in_progress", domain.StatusPending, domain.StatusInProgress, true},
		{"in_progress to completed", domain.StatusInProgress, domain.StatusCompleted, true},
		{"completed back to pending", domain.StatusCompleted, domain.StatusPending, true},
		{"completed back to in_progress", domain.StatusCompleted, domain.StatusInProgress, true},
		{"completed to unread", domain.StatusCompleted, domain.StatusUnread, true},
		{"completed to archived", domain.StatusCompleted, domain.StatusArchived, true},
		{"pending to archived", domain.StatusPending, domain.StatusArchived, false},
		{"in_progress to archived", domain.StatusInProgress, domain.StatusArchived, false},
		{"unread to archived", domain.StatusUnread, domain.StatusArchived, false},
		{"archived to completed", domain.StatusArchived, domain.StatusCompleted, false},
		{"archived to pending", domain.StatusArchived, domain.StatusPending, false},
		{"archived stays archived", domain.StatusArchived, domain.StatusArchived, true},
		{"same visible status", domain.StatusPending, domain.StatusPending, true},
		{"unknown target", domain.StatusPending, domain.ServiceRequestStatus("lost"), false},
		{"picked_up is not stored", domain.StatusCompleted, domain.StatusPickedUp, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.CanTransition(tt.from, tt.to))
		})
	}
}

func TestArchivedIsTerminal(t *testing.T) {
	for _, to := range domain.KanbanColumns() {
		assert.False(t, domain.CanTransition(domain.StatusArchived, to), "archived -> %s", to)
		assert.False(t, domain.ButtonTransitionAllowed(domain.StatusArchived, to), "archived -> %s", to)
		assert.False(t, domain.DragTransitionAllowed(domain.StatusArchived, to), "archived -> %s", to)
	}
}

func TestButtonTransitionAllowed(t *testing.T) {
	assert.False(t, domain.ButtonTransitionAllowed(domain.StatusCompleted, domain.StatusInProgress))
	assert.True(t, domain.ButtonTransitionAllowed(domain.StatusCompleted, domain.StatusPending))
	assert.True(t, domain.ButtonTransitionAllowed(domain.StatusUnread, domain.StatusInProgress))
	assert.True(t, domain.ButtonTransitionAllowed(domain.StatusUnread, domain.StatusCompleted))
	assert.True(t, domain.ButtonTransitionAllowed(domain.StatusCompleted, domain.StatusArchived))
}

func TestDragTransitionAllowed(t *testing.T) {
	for _, from := range domain.KanbanColumns() {
		for _, to := range domain.KanbanColumns() {
			assert.True(t, domain.DragTransitionAllowed(from, to), "%s -> %s", from, to)
		}
		assert.False(t, domain.DragTransitionAllowed(from, domain.StatusArchived))
	}
}

func TestKanbanColumns(t *testing.T) {
	cols := domain.KanbanColumns()
	assert.Equal(t, []domain.ServiceRequestStatus{
		domain.StatusUnread, domain.StatusPending, domain.StatusInProgress, domain.StatusCompleted,
	}, cols)

	cols[0] = domain.StatusArchived
	assert.Equal(t, domain.StatusUnread, domain.KanbanColumns()[0])
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		status   domain.ServiceRequestStatus
		expected int
	}{
		{domain.StatusPending, 25},
		{domain.StatusInProgress, 50},
		{domain.StatusCompleted, 75},
		{domain.StatusPickedUp, 100},
		{domain.StatusUnread, 0},
		{domain.StatusArchived, 0},
		{domain.ServiceRequestStatus(""), 0},
		{domain.ServiceRequestStatus("shipped"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ProgressPercentage(tt.status))
		})
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "მუშავდება", domain.StatusLabel(domain.StatusInProgress).Text("ka"))
	assert.Equal(t, "In Progress", domain.StatusLabel(domain.StatusInProgress).Text("EN"))
	assert.Equal(t, "Unknown", domain.StatusLabel("weird").Text("en"))
}

func TestStampTransition(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	earlier := now.Add(-48 * time.Hour)

	t.Run("sets started_at when entering in_progress", func(t *testing.T) {
		var started, completed *time.Time
		domain.StampTransition(domain.StatusInProgress, &started, &completed, now)
		assert.Equal(t, now, *started)
		assert.Nil(t, completed)
	})

	t.Run("keeps an existing started_at", func(t *testing.T) {
		started := &earlier
		var completed *time.Time
		domain.StampTransition(domain.StatusInProgress, &started, &completed, now)
		assert.Equal(t, earlier, *started)
	})

	t.Run("sets completed_at when entering completed", func(t *testing.T) {
		var started, completed *time.Time
		domain.StampTransition(domain.StatusCompleted, &started, &completed, now)
		assert.Nil(t, started)
		assert.Equal(t, now, *completed)
	})

	t.Run("pending stamps nothing", func(t *testing.T) {
		var started, completed *time.Time
		domain.StampTransition(domain.StatusPending, &started, &completed, now)
		assert.Nil(t, started)
		assert.Nil(t, completed)
	})
}

// =============================================================================
// Urgency, device type, contact status
// =============================================================================

func TestNormalizeUrgency(t *testing.T) {
	tests := []struct {
		in       string
		expected domain.Urgency
	}{
		{"", domain.UrgencyMedium},
		{"normal", domain.UrgencyMedium},
		{"urgent", domain.UrgencyHigh},
		{"Emergency", domain.UrgencyCritical},
		{"low", domain.UrgencyLow},
		{"critical", domain.UrgencyCritical},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := domain.NormalizeUrgency(tt.in)
			assert.Equal(t, tt.expected, got)
			assert.True(t, got.IsValid())
		})
	}

	assert.False(t, domain.NormalizeUrgency("whenever").IsValid())
}

func TestEstimatedCompletionDays(t *testing.T) {
	assert.Equal(t, 7, domain.EstimatedCompletionDays(domain.UrgencyLow))
	assert.Equal(t, 5, domain.EstimatedCompletionDays(domain.UrgencyMedium))
	assert.Equal(t, 3, domain.EstimatedCompletionDays(domain.UrgencyHigh))
	assert.Equal(t, 1, domain.EstimatedCompletionDays(domain.UrgencyCritical))
}

func TestDeviceType_IsValid(t *testing.T) {
	assert.True(t, domain.DeviceMemoryCard.IsValid())
	assert.True(t, domain.DeviceServer.IsValid())
	assert.False(t, domain.DeviceType("floppy").IsValid())
}

func TestContactMessageStatus_IsValid(t *testing.T) {
	assert.True(t, domain.ContactStatusNew.IsValid())
	assert.True(t, domain.ContactStatusReplied.IsValid())
	assert.False(t, domain.ContactMessageStatus("archived").IsValid())
}

// =============================================================================
// Record invariants
// =============================================================================

func TestValidateTimeline(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	before := created.Add(-time.Hour)
	after := created.Add(time.Hour)
	later := created.Add(2 * time.Hour)
	negative := -1.0
	zero := 0.0

	assert.NoError(t, domain.ValidateTimeline(created, nil, nil, nil))
	assert.NoError(t, domain.ValidateTimeline(created, &after, &later, &zero))
	assert.NoError(t, domain.ValidateTimeline(created, nil, &later, nil))
	assert.ErrorIs(t, domain.ValidateTimeline(created, nil, nil, &negative), domain.ErrNegativePrice)
	assert.ErrorIs(t, domain.ValidateTimeline(created, &before, nil, nil), domain.ErrStartedBeforeOpen)
	assert.ErrorIs(t, domain.ValidateTimeline(created, &later, &after, nil), domain.ErrCompletedBeforeRun)
}

func TestFormatCaseCode(t *testing.T) {
	assert.Equal(t, "DL20250001", domain.FormatCaseCode(domain.CaseCodePrefixService, 2025, 1))
	assert.Equal(t, "KB20241234", domain.FormatCaseCode(domain.CaseCodePrefixManual, 2024, 1234))
}
