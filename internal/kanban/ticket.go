// Package kanban groups service requests and manual tasks into status columns
// and applies drag-and-drop moves to whichever side owns the ticket.
package kanban

import (
	"time"

	"github.com/datalab-ge/datalab-api/internal/domain"
)

// Ticket is either a RemoteTicket or a LocalTicket
type Ticket interface {
	ID() string
	CaseID() string
	Name() string
	Status() domain.ServiceRequestStatus
	CreatedAt() time.Time
	ticket()
}

// RemoteTicket is a service request owned by the API
type RemoteTicket struct {
	Request domain.ServiceRequestDTO
}

func (t *RemoteTicket) ID() string           { return t.Request.ID.String() }
func (t *RemoteTicket) CaseID() string       { return t.Request.CaseID }
func (t *RemoteTicket) Name() string         { return t.Request.Name }
func (t *RemoteTicket) CreatedAt() time.Time { return t.Request.CreatedAt }
func (t *RemoteTicket) Status() domain.ServiceRequestStatus {
	return columnOf(t.Request.Status)
}
func (*RemoteTicket) ticket() {}

// LocalTicket is a manual task owned by the local store
type LocalTicket struct {
	Task domain.ManualTask
}

func (t *LocalTicket) ID() string           { return t.Task.ID }
func (t *LocalTicket) CaseID() string       { return t.Task.CaseID }
func (t *LocalTicket) Name() string         { return t.Task.Name }
func (t *LocalTicket) CreatedAt() time.Time { return t.Task.CreatedAt }
func (t *LocalTicket) Status() domain.ServiceRequestStatus {
	return columnOf(t.Task.Status)
}
func (*LocalTicket) ticket() {}

// columnOf treats a missing status as unread
func columnOf(s domain.ServiceRequestStatus) domain.ServiceRequestStatus {
	if s == "" {
		return domain.StatusUnread
	}
	return s
}
