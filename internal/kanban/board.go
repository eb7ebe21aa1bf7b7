package kanban

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrInvalidMove    = errors.New("invalid move")
	ErrInvalidTask    = errors.New("invalid manual task")
)

// ServiceRequestUpdater changes the status of a service request on the API
type ServiceRequestUpdater interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ServiceRequestStatus) error
}

// ManualTaskStore persists manual tasks on this device
type ManualTaskStore interface {
	Save(ctx context.Context, task *domain.ManualTask) error
	List(ctx context.Context) ([]domain.ManualTask, error)
}

// Column is one visible status column
type Column struct {
	Status  domain.ServiceRequestStatus
	Label   domain.Label
	Tickets []Ticket
}

// Board holds the current grouping. Remote tickets change only through the
// updater, local tickets only through the store.
type Board struct {
	updater ServiceRequestUpdater
	store   ManualTaskStore
	logger  *zap.Logger
	now     func() time.Time

	mu      sync.Mutex
	columns map[domain.ServiceRequestStatus][]Ticket
}

func NewBoard(updater ServiceRequestUpdater, store ManualTaskStore, logger *zap.Logger) *Board {
	return &Board{
		updater: updater,
		store:   store,
		logger:  logger,
		now:     time.Now,
		columns: make(map[domain.ServiceRequestStatus][]Ticket),
	}
}

// Build regroups remote requests and local tasks; archived requests are left out
func (b *Board) Build(remote []domain.ServiceRequestDTO, local []domain.ManualTask) {
	columns := make(map[domain.ServiceRequestStatus][]Ticket)
	add := func(t Ticket) {
		if t.Status().IsVisible() {
			columns[t.Status()] = append(columns[t.Status()], t)
		}
	}
	for i := range remote {
		add(&RemoteTicket{Request: remote[i]})
	}
	for i := range local {
		add(&LocalTicket{Task: local[i]})
	}
	for status := range columns {
		sortTickets(columns[status])
	}

	b.mu.Lock()
	b.columns = columns
	b.mu.Unlock()
}

// Load reads manual tasks from the store and rebuilds the board
func (b *Board) Load(ctx context.Context, remote []domain.ServiceRequestDTO) error {
	local, err := b.store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load manual tasks: %w", err)
	}
	b.Build(remote, local)
	return nil
}

// Columns returns the four visible columns in display order
func (b *Board) Columns() []Column {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Column, 0, len(domain.KanbanColumns()))
	for _, status := range domain.KanbanColumns() {
		tickets := make([]Ticket, len(b.columns[status]))
		copy(tickets, b.columns[status])
		out = append(out, Column{Status: status, Label: domain.StatusLabel(status), Tickets: tickets})
	}
	return out
}

// Find returns the ticket with the given id or case code
func (b *Board) Find(ref string) (Ticket, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, _, ok := b.find(ref)
	return t, ok
}

func (b *Board) find(ref string) (Ticket, int, bool) {
	for _, status := range domain.KanbanColumns() {
		for i, t := range b.columns[status] {
			if t.ID() == ref || strings.EqualFold(t.CaseID(), ref) {
				return t, i, true
			}
		}
	}
	return nil, -1, false
}

// Move drops a ticket on another column. Dropping on its own column does nothing.
func (b *Board) Move(ctx context.Context, ref string, target domain.ServiceRequestStatus) error {
	b.mu.Lock()
	t, _, ok := b.find(ref)
	b.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrTicketNotFound, ref)
	}

	from := t.Status()
	if from == target {
		return nil
	}
	if !domain.DragTransitionAllowed(from, target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidMove, from, target)
	}

	var moved Ticket
	switch tk := t.(type) {
	case *RemoteTicket:
		if err := b.updater.UpdateStatus(ctx, tk.Request.ID, target); err != nil {
			return fmt.Errorf("failed to move %s: %w", tk.CaseID(), err)
		}
		req := tk.Request
		req.Status = target
		moved = &RemoteTicket{Request: req}
	case *LocalTicket:
		task := tk.Task
		domain.StampTransition(target, &task.StartedAt, &task.CompletedAt, b.now().UTC())
		task.Status = target
		if err := domain.ValidateTimeline(task.CreatedAt, task.StartedAt, task.CompletedAt, task.Price); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidMove, tk.CaseID(), err)
		}
		if err := b.store.Save(ctx, &task); err != nil {
			return fmt.Errorf("failed to move %s: %w", tk.CaseID(), err)
		}
		moved = &LocalTicket{Task: task}
	default:
		return fmt.Errorf("%w: unsupported ticket %T", ErrInvalidMove, t)
	}

	b.logger.Info("ticket moved",
		zap.String("case_id", t.CaseID()),
		zap.String("from", string(from)),
		zap.String("to", string(target)))

	b.replace(moved)
	return nil
}

// replace swaps a ticket in place, moving it to the column of its current status
func (b *Board) replace(t Ticket) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, i, ok := b.find(t.ID()); ok {
		col := old.Status()
		b.columns[col] = append(b.columns[col][:i:i], b.columns[col][i+1:]...)
	}
	col := t.Status()
	b.columns[col] = append(b.columns[col], t)
	sortTickets(b.columns[col])
}

// ManualTaskInput is the form used to create a manual task
type ManualTaskInput struct {
	Name               string
	Email              string
	Phone              string
	DeviceType         domain.DeviceType
	ProblemDescription string
	Urgency            string
	Price              *float64
}

// ManualTaskEdit is a partial edit of a manual task; nil fields are left untouched
type ManualTaskEdit struct {
	Name               *string
	Email              *string
	Phone              *string
	DeviceType         *domain.DeviceType
	ProblemDescription *string
	Urgency            *string
	Price              *float64
	StartedAt          *time.Time
	CompletedAt        *time.Time
}

// ManualCaseCode renders KB<year><last four digits of unix millis>
func ManualCaseCode(now time.Time) string {
	return fmt.Sprintf("%s%d%04d", domain.CaseCodePrefixManual, now.Year(), now.UnixMilli()%10000)
}

// CreateManualTask adds an unread task that lives only in the local store
func (b *Board) CreateManualTask(ctx context.Context, in ManualTaskInput) (*domain.ManualTask, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidTask)
	}
	urgency := domain.NormalizeUrgency(in.Urgency)
	if !urgency.IsValid() {
		return nil, fmt.Errorf("%w: unknown urgency %q", ErrInvalidTask, in.Urgency)
	}
	device := in.DeviceType
	if device == "" {
		device = domain.DeviceOther
	}
	if !device.IsValid() {
		return nil, fmt.Errorf("%w: unknown device type %q", ErrInvalidTask, in.DeviceType)
	}
	if in.Price != nil && *in.Price < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTask, domain.ErrNegativePrice)
	}

	now := b.now().UTC()
	task := &domain.ManualTask{
		ID:                 fmt.Sprintf("manual_%d", now.UnixNano()),
		CaseID:             ManualCaseCode(now),
		Name:               strings.TrimSpace(in.Name),
		Email:              in.Email,
		Phone:              in.Phone,
		DeviceType:         device,
		ProblemDescription: in.ProblemDescription,
		Urgency:            urgency,
		Status:             domain.StatusUnread,
		Price:              in.Price,
		CreatedAt:          now,
	}
	if err := b.store.Save(ctx, task); err != nil {
		if errors.Is(err, domain.ErrDuplicateCaseCode) {
			return nil, fmt.Errorf("%w: case code %s is taken, retry: %w", ErrInvalidTask, task.CaseID, err)
		}
		return nil, err
	}

	b.logger.Info("manual task created", zap.String("id", task.ID), zap.String("case_id", task.CaseID))
	b.replace(&LocalTicket{Task: *task})
	return task, nil
}

// EditManualTask updates the fields of a local task, including manual timestamps
func (b *Board) EditManualTask(ctx context.Context, ref string, edit ManualTaskEdit) (*domain.ManualTask, error) {
	b.mu.Lock()
	t, _, ok := b.find(ref)
	b.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTicketNotFound, ref)
	}
	local, ok := t.(*LocalTicket)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a manual task", ErrInvalidTask, t.CaseID())
	}

	task := local.Task
	if edit.Name != nil {
		if strings.TrimSpace(*edit.Name) == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidTask)
		}
		task.Name = strings.TrimSpace(*edit.Name)
	}
	if edit.Email != nil {
		task.Email = *edit.Email
	}
	if edit.Phone != nil {
		task.Phone = *edit.Phone
	}
	if edit.DeviceType != nil {
		if !edit.DeviceType.IsValid() {
			return nil, fmt.Errorf("%w: unknown device type %q", ErrInvalidTask, *edit.DeviceType)
		}
		task.DeviceType = *edit.DeviceType
	}
	if edit.ProblemDescription != nil {
		task.ProblemDescription = *edit.ProblemDescription
	}
	if edit.Urgency != nil {
		u := domain.NormalizeUrgency(*edit.Urgency)
		if !u.IsValid() {
			return nil, fmt.Errorf("%w: unknown urgency %q", ErrInvalidTask, *edit.Urgency)
		}
		task.Urgency = u
	}
	if edit.Price != nil {
		task.Price = edit.Price
	}
	if edit.StartedAt != nil {
		task.StartedAt = edit.StartedAt
	}
	if edit.CompletedAt != nil {
		task.CompletedAt = edit.CompletedAt
	}

	if err := domain.ValidateTimeline(task.CreatedAt, task.StartedAt, task.CompletedAt, task.Price); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTask, err)
	}
	if err := b.store.Save(ctx, &task); err != nil {
		return nil, err
	}

	b.replace(&LocalTicket{Task: task})
	return &task, nil
}

// sortTickets orders a column newest first
func sortTickets(tickets []Ticket) {
	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt().After(tickets[j].CreatedAt())
	})
}
