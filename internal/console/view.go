// Package console renders admin data for the terminal.
package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/datalab-ge/datalab-api/internal/admin"
	"github.com/datalab-ge/datalab-api/internal/analytics"
	"github.com/datalab-ge/datalab-api/internal/config"
	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/kanban"
	"github.com/datalab-ge/datalab-api/internal/pricing"
)

const (
	columnWidth = 28
	dateFormat  = "2006-01-02"
)

type palette struct {
	title  lipgloss.Color
	border lipgloss.Color
	muted  lipgloss.Color
	ok     lipgloss.Color
	fail   lipgloss.Color
}

var (
	lightPalette = palette{title: "#101F38", border: "#dce0e5", muted: "#6b7280", ok: "#2e7d32", fail: "#c62828"}
	darkPalette  = palette{title: "#8BC34A", border: "#2a3850", muted: "#9ca3af", ok: "#8BC34A", fail: "#e53935"}
)

var _ admin.Notifier = (*View)(nil)

// View writes to one output using the configured locale and color scheme
type View struct {
	w      io.Writer
	locale string

	title  lipgloss.Style
	muted  lipgloss.Style
	ok     lipgloss.Style
	fail   lipgloss.Style
	column lipgloss.Style
}

func NewView(w io.Writer, display config.DisplayConfig) *View {
	p := lightPalette
	if display.DarkMode {
		p = darkPalette
	}
	return &View{
		w:      w,
		locale: display.Locale,
		title:  lipgloss.NewStyle().Bold(true).Foreground(p.title),
		muted:  lipgloss.NewStyle().Foreground(p.muted),
		ok:     lipgloss.NewStyle().Foreground(p.ok),
		fail:   lipgloss.NewStyle().Foreground(p.fail),
		column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1).
			Width(columnWidth),
	}
}

// StatusText is the localized name of a status
func (v *View) StatusText(s domain.ServiceRequestStatus) string {
	return domain.StatusLabel(s).Text(v.locale)
}

func (v *View) Success(message string) {
	fmt.Fprintln(v.w, v.ok.Render("✓ "+message))
}

func (v *View) Failure(message string, err error) {
	line := "✗ " + message
	if err != nil {
		line += ": " + err.Error()
	}
	fmt.Fprintln(v.w, v.fail.Render(line))
}

func (v *View) table(header string, rows func(tw *tabwriter.Writer)) {
	tw := tabwriter.NewWriter(v.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	_ = tw.Flush()
}

func formatPrice(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f %s", *p, pricing.Currency)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(dateFormat)
}

// Summary prints collection sizes of a snapshot
func (v *View) Summary(s *admin.Snapshot) {
	fmt.Fprintln(v.w, v.title.Render("DataLab"))
	fmt.Fprintf(v.w, "Active requests:   %d\n", len(s.ServiceRequests))
	fmt.Fprintf(v.w, "Archived requests: %d\n", len(s.ArchivedRequests))
	fmt.Fprintf(v.w, "Messages:          %d (new %d, read %d, replied %d)\n",
		s.ContactStats.Total, s.ContactStats.New, s.ContactStats.Read, s.ContactStats.Replied)
	fmt.Fprintf(v.w, "Testimonials:      %d\n", len(s.Testimonials))
	fmt.Fprintln(v.w, v.muted.Render("Loaded "+s.LoadedAt.Format(time.RFC3339)))
}

func (v *View) ServiceRequests(list []domain.ServiceRequestDTO) {
	v.table("ID\tCASE\tNAME\tDEVICE\tURGENCY\tSTATUS\tREAD\tPRICE\tCREATED", func(tw *tabwriter.Writer) {
		for _, r := range list {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%t\t%s\t%s\n",
				r.ID, r.CaseID, r.Name, r.DeviceType, r.Urgency, v.StatusText(r.Status),
				r.IsRead, formatPrice(r.Price), r.CreatedAt.Format(dateFormat))
		}
	})
}

func (v *View) ContactMessages(list []domain.ContactMessageDTO) {
	v.table("ID\tNAME\tEMAIL\tSUBJECT\tSTATUS\tCREATED", func(tw *tabwriter.Writer) {
		for _, m := range list {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				m.ID, m.Name, m.Email, m.Subject, m.Status, m.CreatedAt.Format(dateFormat))
		}
	})
}

func (v *View) Testimonials(list []domain.TestimonialDTO) {
	v.table("ID\tNAME\tRATING\tACTIVE", func(tw *tabwriter.Writer) {
		for _, t := range list {
			name := t.Name
			if strings.EqualFold(v.locale, "en") {
				name = t.NameEn
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", t.ID, name, strings.Repeat("★", t.Rating), t.IsActive)
		}
	})
}

// Case prints a tracking record
func (v *View) Case(r *domain.CaseRecord) {
	fmt.Fprintln(v.w, v.title.Render(r.CaseID))
	fmt.Fprintf(v.w, "Name:      %s\n", r.Name)
	fmt.Fprintf(v.w, "Device:    %s\n", r.DeviceType)
	fmt.Fprintf(v.w, "Problem:   %s\n", r.ProblemDescription)
	fmt.Fprintf(v.w, "Urgency:   %s\n", r.Urgency)
	fmt.Fprintf(v.w, "Status:    %s (%d%%)\n", v.StatusText(r.Status), r.ProgressPercentage)
	fmt.Fprintf(v.w, "Created:   %s\n", r.CreatedAt.Format(dateFormat))
	fmt.Fprintf(v.w, "Started:   %s\n", formatDate(r.StartedAt))
	fmt.Fprintf(v.w, "Completed: %s\n", formatDate(r.CompletedAt))
	fmt.Fprintf(v.w, "Price:     %s\n", formatPrice(r.Price))
	if r.IsManual {
		fmt.Fprintln(v.w, v.muted.Render("Manual board task"))
	}
}

func (v *View) Estimate(e *pricing.Estimate) {
	timeframe := e.Timeframe.Ka
	if strings.EqualFold(v.locale, "en") {
		timeframe = e.Timeframe.En
	}
	fmt.Fprintln(v.w, v.title.Render(fmt.Sprintf("%d %s", e.Price, e.Currency)))
	fmt.Fprintf(v.w, "%.0f × %.1f × %.1f\n", e.Breakdown.BasePrice, e.Breakdown.ProblemMultiplier, e.Breakdown.UrgencyMultiplier)
	fmt.Fprintln(v.w, timeframe)
}

// Board prints the four columns side by side
func (v *View) Board(columns []kanban.Column) {
	rendered := make([]string, 0, len(columns))
	for _, col := range columns {
		var b strings.Builder
		b.WriteString(v.title.Render(fmt.Sprintf("%s (%d)", col.Label.Text(v.locale), len(col.Tickets))))
		for _, t := range col.Tickets {
			b.WriteString("\n")
			b.WriteString(t.CaseID())
			if _, local := t.(*kanban.LocalTicket); local {
				b.WriteString(v.muted.Render(" ✎"))
			}
			b.WriteString("\n")
			b.WriteString(v.muted.Render(t.Name()))
		}
		rendered = append(rendered, v.column.Render(b.String()))
	}
	fmt.Fprintln(v.w, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

func (v *View) Analytics(r analytics.Report) {
	m := r.Metrics
	fmt.Fprintln(v.w, v.title.Render(r.Timeframe.Label().Text(v.locale)))
	fmt.Fprintf(v.w, "Revenue:          %.2f %s\n", m.TotalRevenue, pricing.Currency)
	fmt.Fprintf(v.w, "Cases:            %d\n", m.TotalCases)
	fmt.Fprintf(v.w, "Completed:        %d\n", m.Completed)
	fmt.Fprintf(v.w, "Active:           %d\n", m.Active)
	fmt.Fprintf(v.w, "Avg. completion:  %.1f days\n", m.AvgCompletionDays)
	fmt.Fprintf(v.w, "Satisfaction:     %.1f / 5 (%d ratings)\n", m.CustomerSatisfaction, m.Ratings)

	v.table("STATUS\tCOUNT", func(tw *tabwriter.Writer) {
		for _, s := range append(domain.KanbanColumns(), domain.StatusArchived) {
			if n := r.ChartData.StatusDistribution[s]; n > 0 {
				fmt.Fprintf(tw, "%s\t%d\n", v.StatusText(s), n)
			}
		}
	})
}

func (v *View) History(caseID string, entries []domain.StatusHistoryDTO) {
	fmt.Fprintln(v.w, v.title.Render(caseID))
	v.table("WHEN\tFROM\tTO\tBY", func(tw *tabwriter.Writer) {
		for _, h := range entries {
			from := "-"
			if h.FromStatus != nil {
				from = v.StatusText(*h.FromStatus)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", h.ChangedAt.Format(time.RFC3339), from, v.StatusText(h.ToStatus), h.ChangedBy)
		}
	})
}
