package analytics_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/datalab-ge/datalab-api/internal/analytics"
	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func request(status domain.ServiceRequestStatus, createdDaysAgo int, price *float64) domain.ServiceRequestDTO {
	return domain.ServiceRequestDTO{
		Status:    status,
		CreatedAt: now.Add(-time.Duration(createdDaysAgo) * 24 * time.Hour),
		Price:     price,
	}
}

func TestParseTimeframe(t *testing.T) {
	tf, err := analytics.ParseTimeframe("")
	require.NoError(t, err)
	assert.Equal(t, analytics.TimeframeWeek, tf)

	tf, err = analytics.ParseTimeframe("year")
	require.NoError(t, err)
	assert.Equal(t, 365, tf.Days())

	_, err = analytics.ParseTimeframe("decade")
	assert.Error(t, err)
}

func TestCompute_FiltersByTimeframe(t *testing.T) {
	requests := []domain.ServiceRequestDTO{
		request(domain.StatusPending, 1, ptr(100.0)),
		request(domain.StatusInProgress, 3, nil),
		request(domain.StatusCompleted, 6, ptr(250.0)),
		request(domain.StatusUnread, 20, ptr(80.0)),
		request(domain.StatusArchived, 200, ptr(300.0)),
	}

	week := analytics.Compute(requests, nil, analytics.TimeframeWeek, now)
	assert.Equal(t, 3, week.Metrics.TotalCases)
	assert.Equal(t, 350.0, week.Metrics.TotalRevenue)
	assert.Equal(t, 1, week.Metrics.Completed)
	assert.Equal(t, 2, week.Metrics.Active)

	month := analytics.Compute(requests, nil, analytics.TimeframeMonth, now)
	assert.Equal(t, 4, month.Metrics.TotalCases)
	assert.Equal(t, 430.0, month.Metrics.TotalRevenue)

	year := analytics.Compute(requests, nil, analytics.TimeframeYear, now)
	assert.Equal(t, 5, year.Metrics.TotalCases)
	assert.Equal(t, 730.0, year.Metrics.TotalRevenue)
}

func TestCompute_AverageCompletionTime(t *testing.T) {
	started := now.Add(-72 * time.Hour)
	a := request(domain.StatusCompleted, 4, nil)
	a.StartedAt = ptr(started)
	a.CompletedAt = ptr(started.Add(36 * time.Hour)) // 1.5 days

	b := request(domain.StatusCompleted, 4, nil)
	b.StartedAt = ptr(started)
	b.CompletedAt = ptr(started.Add(44 * time.Hour)) // ~1.83 days

	// completed without a start stamp is ignored
	c := request(domain.StatusCompleted, 4, nil)
	c.CompletedAt = ptr(now)

	report := analytics.Compute([]domain.ServiceRequestDTO{a, b, c}, nil, analytics.TimeframeWeek, now)
	assert.Equal(t, 1.7, report.Metrics.AvgCompletionDays)
	assert.Equal(t, 3, report.Metrics.Completed)
}

func TestCompute_CustomerSatisfaction(t *testing.T) {
	testimonials := []domain.TestimonialDTO{{Rating: 5}, {Rating: 4}, {Rating: 4}}
	report := analytics.Compute(nil, testimonials, analytics.TimeframeWeek, now)
	assert.Equal(t, 4.3, report.Metrics.CustomerSatisfaction)
	assert.Equal(t, 3, report.Metrics.Ratings)

	empty := analytics.Compute(nil, nil, analytics.TimeframeWeek, now)
	assert.Equal(t, 0.0, empty.Metrics.CustomerSatisfaction)
	assert.Equal(t, 0.0, empty.Metrics.AvgCompletionDays)
}

func TestCompute_ChartDataCoversEverything(t *testing.T) {
	requests := []domain.ServiceRequestDTO{
		request(domain.StatusPending, 0, nil),
		request(domain.StatusPending, 0, nil),
		request(domain.StatusCompleted, 400, nil),
		request("", 2, nil),
	}

	report := analytics.Compute(requests, nil, analytics.TimeframeWeek, now)

	assert.Equal(t, 2, report.ChartData.StatusDistribution[domain.StatusPending])
	assert.Equal(t, 1, report.ChartData.StatusDistribution[domain.StatusCompleted])
	assert.Equal(t, 1, report.ChartData.StatusDistribution[domain.StatusUnread])

	require.Len(t, report.ChartData.PerDay, 3)
	assert.Equal(t, "2024-05-26", report.ChartData.PerDay[0].Date)
	assert.Equal(t, analytics.DayCount{Date: "2025-06-30", Count: 2}, report.ChartData.PerDay[2])
}

func TestExport(t *testing.T) {
	report := analytics.Compute([]domain.ServiceRequestDTO{request(domain.StatusCompleted, 1, ptr(120.0))}, nil, analytics.TimeframeMonth, now)

	data, err := analytics.Export(report, now)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "month", doc["timeframe"])
	assert.Equal(t, "2025-06-30T12:00:00Z", doc["export_date"])
	assert.Contains(t, doc, "metrics")
	assert.Contains(t, doc, "chart_data")

	assert.Equal(t, "analytics_month_2025-06-30.json", analytics.ExportFilename(analytics.TimeframeMonth, now))
}
