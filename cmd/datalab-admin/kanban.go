package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/kanban"
	"github.com/spf13/cobra"
)

var kanbanCmd = &cobra.Command{
	Use:     "kanban",
	Aliases: []string{"board"},
	Short:   "Kanban board of service requests and manual tasks",
	Args:    cobra.NoArgs,
	RunE:    runKanbanShow,
}

var kanbanMoveCmd = &cobra.Command{
	Use:   "move <id|case-code> <unread|pending|in_progress|completed>",
	Short: "Move a ticket to another column",
	Args:  cobra.ExactArgs(2),
	RunE:  runKanbanMove,
}

var kanbanCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Add a manual task kept only on this machine",
	Args:  cobra.ExactArgs(1),
	RunE:  runKanbanCreate,
}

var kanbanEditCmd = &cobra.Command{
	Use:   "edit <id|case-code>",
	Short: "Edit a manual task; dates use YYYY-MM-DD or RFC 3339",
	Args:  cobra.ExactArgs(1),
	RunE:  runKanbanEdit,
}

const dateLayout = "2006-01-02"

var taskFlags struct {
	name, email, phone, device, problem, urgency, price, started, completed string
}

func init() {
	for _, c := range []*cobra.Command{kanbanCreateCmd, kanbanEditCmd} {
		f := c.Flags()
		f.StringVar(&taskFlags.email, "email", "", "customer email")
		f.StringVar(&taskFlags.phone, "phone", "", "customer phone")
		f.StringVar(&taskFlags.device, "device", "", "device type")
		f.StringVar(&taskFlags.problem, "problem", "", "problem description")
		f.StringVar(&taskFlags.urgency, "urgency", "", "urgency")
		f.StringVar(&taskFlags.price, "price", "", "price")
	}
	kanbanEditCmd.Flags().StringVar(&taskFlags.name, "name", "", "customer name")
	kanbanEditCmd.Flags().StringVar(&taskFlags.started, "started", "", "work start date")
	kanbanEditCmd.Flags().StringVar(&taskFlags.completed, "completed", "", "completion date")

	kanbanCmd.AddCommand(&cobra.Command{Use: "show", Short: "Print the board", Args: cobra.NoArgs, RunE: runKanbanShow})
	kanbanCmd.AddCommand(kanbanMoveCmd, kanbanCreateCmd, kanbanEditCmd)
	rootCmd.AddCommand(kanbanCmd)
}

// loadBoard builds the board from the current snapshot and the local store
func loadBoard(ctx context.Context) (*kanban.Board, error) {
	snap, err := app.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	store, err := app.localStore()
	if err != nil {
		return nil, err
	}
	board := kanban.NewBoard(app.ctrl, store, app.log.Named("kanban"))
	if err := board.Load(ctx, snap.ServiceRequests); err != nil {
		return nil, err
	}
	return board, nil
}

func runKanbanShow(cmd *cobra.Command, args []string) error {
	board, err := loadBoard(cmd.Context())
	if err != nil {
		return err
	}
	app.view.Board(board.Columns())
	return nil
}

func runKanbanMove(cmd *cobra.Command, args []string) error {
	board, err := loadBoard(cmd.Context())
	if err != nil {
		return err
	}
	target := domain.ServiceRequestStatus(args[1])
	if err := board.Move(cmd.Context(), args[0], target); err != nil {
		return err
	}
	if tk, ok := board.Find(args[0]); ok {
		if _, local := tk.(*kanban.LocalTicket); local {
			app.view.Success("Task moved")
		}
	}
	app.view.Board(board.Columns())
	return nil
}

func runKanbanCreate(cmd *cobra.Command, args []string) error {
	price, err := optionalPrice(taskFlags.price)
	if err != nil {
		return err
	}
	board, err := loadBoard(cmd.Context())
	if err != nil {
		return err
	}
	task, err := board.CreateManualTask(cmd.Context(), kanban.ManualTaskInput{
		Name:               args[0],
		Email:              taskFlags.email,
		Phone:              taskFlags.phone,
		DeviceType:         domain.DeviceType(taskFlags.device),
		ProblemDescription: taskFlags.problem,
		Urgency:            taskFlags.urgency,
		Price:              price,
	})
	if err != nil {
		return err
	}
	app.view.Success(fmt.Sprintf("Task %s created", task.CaseID))
	return nil
}

func runKanbanEdit(cmd *cobra.Command, args []string) error {
	var edit kanban.ManualTaskEdit
	flags := cmd.Flags()
	str := func(name string, val string) *string {
		if !flags.Changed(name) {
			return nil
		}
		return &val
	}
	edit.Name = str("name", taskFlags.name)
	edit.Email = str("email", taskFlags.email)
	edit.Phone = str("phone", taskFlags.phone)
	edit.ProblemDescription = str("problem", taskFlags.problem)
	edit.Urgency = str("urgency", taskFlags.urgency)
	if flags.Changed("device") {
		d := domain.DeviceType(taskFlags.device)
		edit.DeviceType = &d
	}

	var err error
	if edit.Price, err = optionalPrice(taskFlags.price); err != nil {
		return err
	}

	board, err := loadBoard(cmd.Context())
	if err != nil {
		return err
	}
	var created time.Time
	if tk, ok := board.Find(args[0]); ok {
		created = tk.CreatedAt()
	}
	if edit.StartedAt, err = optionalDate(taskFlags.started, created); err != nil {
		return err
	}
	if edit.CompletedAt, err = optionalDate(taskFlags.completed, created); err != nil {
		return err
	}

	task, err := board.EditManualTask(cmd.Context(), args[0], edit)
	if err != nil {
		return err
	}
	app.view.Success(fmt.Sprintf("Task %s updated", task.CaseID))
	return nil
}

func optionalPrice(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", raw)
	}
	return &p, nil
}

// optionalDate parses RFC 3339 or YYYY-MM-DD. A bare date on the day the task was
// created resolves to the creation time rather than midnight.
func optionalDate(raw string, created time.Time) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", raw)
	}
	if !created.IsZero() && created.UTC().Format(dateLayout) == raw && t.Before(created) {
		t = created.UTC()
	}
	return &t, nil
}
