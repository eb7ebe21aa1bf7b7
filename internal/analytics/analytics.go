// Package analytics derives dashboard metrics from already loaded collections.
// Nothing here persists or fetches; every figure is recomputed from its inputs.
package analytics

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/datalab-ge/datalab-api/internal/domain"
)

// Timeframe selects how far back the headline metrics look
type Timeframe string

const (
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeYear  Timeframe = "year"
)

// DefaultTimeframe is used when none is requested
const DefaultTimeframe = TimeframeWeek

// ParseTimeframe validates a timeframe name; empty input yields DefaultTimeframe
func ParseTimeframe(s string) (Timeframe, error) {
	switch Timeframe(s) {
	case "":
		return DefaultTimeframe, nil
	case TimeframeWeek, TimeframeMonth, TimeframeYear:
		return Timeframe(s), nil
	default:
		return "", fmt.Errorf("unknown timeframe %q, expected week, month or year", s)
	}
}

// Days is the length of the timeframe window
func (tf Timeframe) Days() int {
	switch tf {
	case TimeframeWeek:
		return 7
	case TimeframeMonth:
		return 30
	default:
		return 365
	}
}

// Label is the display name of the timeframe
func (tf Timeframe) Label() domain.Label {
	switch tf {
	case TimeframeWeek:
		return domain.Label{Ka: "ბოლო კვირა", En: "Last week"}
	case TimeframeMonth:
		return domain.Label{Ka: "ბოლო თვე", En: "Last month"}
	default:
		return domain.Label{Ka: "ბოლო წელი", En: "Last year"}
	}
}

// Metrics are the headline dashboard figures
type Metrics struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalCases   int     `json:"total_cases"`
	Completed    int     `json:"completed_cases"`
	// Active counts pending and in-progress cases
	Active               int     `json:"active_cases"`
	AvgCompletionDays    float64 `json:"avg_completion_days"`
	CustomerSatisfaction float64 `json:"customer_satisfaction"`
	Ratings              int     `json:"ratings"`
}

// DayCount is the number of cases opened on one calendar day
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ChartData feeds the dashboard charts; it covers every supplied request regardless of timeframe
type ChartData struct {
	PerDay             []DayCount                          `json:"per_day"`
	StatusDistribution map[domain.ServiceRequestStatus]int `json:"status_distribution"`
}

// Report is the result of one computation
type Report struct {
	Timeframe Timeframe `json:"timeframe"`
	Metrics   Metrics   `json:"metrics"`
	ChartData ChartData `json:"chart_data"`
}

// Compute derives a report from requests and testimonials as of now
func Compute(requests []domain.ServiceRequestDTO, testimonials []domain.TestimonialDTO, tf Timeframe, now time.Time) Report {
	cutoff := now.Add(-time.Duration(tf.Days()) * 24 * time.Hour)

	var m Metrics
	var durationSum time.Duration
	var timed int

	for _, r := range requests {
		if r.CreatedAt.Before(cutoff) {
			continue
		}
		m.TotalCases++
		if r.Price != nil {
			m.TotalRevenue += *r.Price
		}
		switch r.Status {
		case domain.StatusCompleted:
			m.Completed++
			if r.StartedAt != nil && r.CompletedAt != nil {
				durationSum += r.CompletedAt.Sub(*r.StartedAt)
				timed++
			}
		case domain.StatusPending, domain.StatusInProgress:
			m.Active++
		}
	}

	if timed > 0 {
		avg := durationSum / time.Duration(timed)
		m.AvgCompletionDays = roundOneDecimal(avg.Hours() / 24)
	}

	if len(testimonials) > 0 {
		sum := 0
		for _, t := range testimonials {
			sum += t.Rating
		}
		m.CustomerSatisfaction = roundOneDecimal(float64(sum) / float64(len(testimonials)))
		m.Ratings = len(testimonials)
	}

	return Report{
		Timeframe: tf,
		Metrics:   m,
		ChartData: chartData(requests),
	}
}

func chartData(requests []domain.ServiceRequestDTO) ChartData {
	perDay := make(map[string]int)
	dist := make(map[domain.ServiceRequestStatus]int)
	for _, r := range requests {
		perDay[r.CreatedAt.UTC().Format("2006-01-02")]++
		status := r.Status
		if status == "" {
			status = domain.StatusUnread
		}
		dist[status]++
	}

	days := make([]DayCount, 0, len(perDay))
	for d, c := range perDay {
		days = append(days, DayCount{Date: d, Count: c})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return ChartData{PerDay: days, StatusDistribution: dist}
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

// ExportDocument is the downloadable analytics snapshot
type ExportDocument struct {
	Metrics    Metrics   `json:"metrics"`
	Timeframe  Timeframe `json:"timeframe"`
	ExportDate time.Time `json:"export_date"`
	ChartData  ChartData `json:"chart_data"`
}

// Export renders a report as an indented JSON document
func Export(report Report, now time.Time) ([]byte, error) {
	doc := ExportDocument{
		Metrics:    report.Metrics,
		Timeframe:  report.Timeframe,
		ExportDate: now.UTC(),
		ChartData:  report.ChartData,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode analytics export: %w", err)
	}
	return data, nil
}

// ExportFilename is the conventional file name of an export
func ExportFilename(tf Timeframe, now time.Time) string {
	return fmt.Sprintf("analytics_%s_%s.json", tf, now.UTC().Format("2006-01-02"))
}
