package domain

import (
	"strings"
	"time"
)

// ServiceRequestStatus is the lifecycle state of a service request (ticket)
type ServiceRequestStatus string

const (
	StatusUnread     ServiceRequestStatus = "unread"
	StatusPending    ServiceRequestStatus = "pending"
	StatusInProgress ServiceRequestStatus = "in_progress"
	StatusCompleted  ServiceRequestStatus = "completed"
	StatusArchived   ServiceRequestStatus = "archived"

	// StatusPickedUp is only ever reported by case tracking, never stored by the admin flow
	StatusPickedUp ServiceRequestStatus = "picked_up"
)

// kanbanColumns are the visible, drag-targetable states in display order
var kanbanColumns = []ServiceRequestStatus{
	StatusUnread,
	StatusPending,
	StatusInProgress,
	StatusCompleted,
}

// KanbanColumns returns the four visible board columns in display order
func KanbanColumns() []ServiceRequestStatus {
	out := make([]ServiceRequestStatus, len(kanbanColumns))
	copy(out, kanbanColumns)
	return out
}

// IsVisible reports whether the status has a Kanban column
func (s ServiceRequestStatus) IsVisible() bool {
	for _, c := range kanbanColumns {
		if c == s {
			return true
		}
	}
	return false
}

// IsValid reports whether the status is one of the five stored states
func (s ServiceRequestStatus) IsValid() bool {
	return s.IsVisible() || s == StatusArchived
}

// IsActive reports whether a request with this status belongs to the active collection
func (s ServiceRequestStatus) IsActive() bool {
	return s != StatusArchived
}

// CanTransition is the authoritative rule for stored status changes.
// The four visible states form a complete graph, archived is reachable only
// from completed and nothing leaves archived. Staying put is always allowed.
func CanTransition(from, to ServiceRequestStatus) bool {
	if from == to {
		return from.IsValid()
	}
	if from == StatusArchived {
		return false
	}
	if to == StatusArchived {
		return from == StatusCompleted
	}
	return from.IsVisible() && to.IsVisible()
}

// ButtonTransitionAllowed reports whether an explicit admin action button may move
// a request from one state to another. "Start work" is not offered on completed
// requests; everything else follows CanTransition.
func ButtonTransitionAllowed(from, to ServiceRequestStatus) bool {
	if to == StatusInProgress && from == StatusCompleted {
		return false
	}
	return CanTransition(from, to)
}

// DragTransitionAllowed reports whether a Kanban drop from one column onto another is allowed
func DragTransitionAllowed(from, to ServiceRequestStatus) bool {
	return from.IsVisible() && to.IsVisible()
}

// ProgressPercentage maps a status to the tracking progress bar value
func ProgressPercentage(status ServiceRequestStatus) int {
	switch status {
	case StatusPending:
		return 25
	case StatusInProgress:
		return 50
	case StatusCompleted:
		return 75
	case StatusPickedUp:
		return 100
	default:
		return 0
	}
}

// Label is a bilingual display name
type Label struct {
	Ka string `json:"ka"`
	En string `json:"en"`
}

// StatusLabel returns the display name of a status
func StatusLabel(status ServiceRequestStatus) Label {
	switch status {
	case StatusUnread:
		return Label{Ka: "ახალი", En: "New"}
	case StatusPending:
		return Label{Ka: "მომლოდინე", En: "Pending"}
	case StatusInProgress:
		return Label{Ka: "მუშავდება", En: "In Progress"}
	case StatusCompleted:
		return Label{Ka: "დასრულებული", En: "Completed"}
	case StatusPickedUp:
		return Label{Ka: "გატანილი", En: "Picked Up"}
	case StatusArchived:
		return Label{Ka: "არქივი", En: "Archived"}
	default:
		return Label{Ka: "უცნობი", En: "Unknown"}
	}
}

// Text picks the label for a locale, Georgian being the default
func (l Label) Text(locale string) string {
	if strings.EqualFold(locale, "en") {
		return l.En
	}
	return l.Ka
}

// StampTransition applies the timestamp side effects of entering a status.
// Existing stamps are never overwritten.
func StampTransition(to ServiceRequestStatus, startedAt, completedAt **time.Time, now time.Time) {
	switch to {
	case StatusInProgress:
		if *startedAt == nil {
			t := now
			*startedAt = &t
		}
	case StatusCompleted:
		if *completedAt == nil {
			t := now
			*completedAt = &t
		}
	}
}

// ContactMessageStatus is the handling state of a contact message
type ContactMessageStatus string

const (
	ContactStatusNew     ContactMessageStatus = "new"
	ContactStatusRead    ContactMessageStatus = "read"
	ContactStatusReplied ContactMessageStatus = "replied"
)

// IsValid reports whether the status is known. Any known status may follow any other.
func (s ContactMessageStatus) IsValid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied:
		return true
	}
	return false
}

// Urgency is how quickly a customer needs the recovery done
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// NormalizeUrgency folds legacy form values onto the canonical scale.
// Empty input yields medium; unknown input is returned unchanged and fails IsValid.
func NormalizeUrgency(raw string) Urgency {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "normal", "medium":
		return UrgencyMedium
	case "urgent", "high":
		return UrgencyHigh
	case "emergency", "critical":
		return UrgencyCritical
	case "low":
		return UrgencyLow
	default:
		return Urgency(raw)
	}
}

// IsValid reports whether the urgency is on the canonical scale
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// EstimatedCompletionDays is the promised turnaround for an urgency level
func EstimatedCompletionDays(u Urgency) int {
	switch u {
	case UrgencyLow:
		return 7
	case UrgencyHigh:
		return 3
	case UrgencyCritical:
		return 1
	default:
		return 5
	}
}

// DeviceType is the kind of storage media brought in for recovery
type DeviceType string

const (
	DeviceHDD        DeviceType = "hdd"
	DeviceSSD        DeviceType = "ssd"
	DeviceRAID       DeviceType = "raid"
	DeviceUSB        DeviceType = "usb"
	DeviceSD         DeviceType = "sd"
	DeviceMemoryCard DeviceType = "memory_card"
	DeviceServer     DeviceType = "server"
	DeviceOther      DeviceType = "other"
)

// IsValid reports whether the device type is known
func (d DeviceType) IsValid() bool {
	switch d {
	case DeviceHDD, DeviceSSD, DeviceRAID, DeviceUSB, DeviceSD, DeviceMemoryCard, DeviceServer, DeviceOther:
		return true
	}
	return false
}
