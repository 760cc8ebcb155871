package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartkuliner-seller-service/internal/analytics"
	"smartkuliner-seller-service/internal/model"
)

func TestSalesReportDaily(t *testing.T) {
	completed := pendingOrder("ord-1", "seller-1")
	completed.Status = "completed"
	completed.CreatedAt = "2025-03-05T09:00:00Z"
	completed.TotalAmount = 80000

	still := pendingOrder("ord-2", "seller-1")
	still.CreatedAt = "2025-03-06T09:00:00Z"

	svc := NewAnalyticsService(newFakeOrderRepo(completed, still))

	report, err := svc.SalesReport(context.Background(), "seller-1", analytics.Daily, 2025, 2)
	require.NoError(t, err)

	require.Len(t, report.Buckets, 31)
	assert.Equal(t, 80000.0, report.Buckets[4].Amount)
	assert.Equal(t, 80000.0, report.Total)
	assert.Equal(t, "Rp 80.000", report.FormattedTotal)
	assert.Equal(t, analytics.Window{Year: 2025, Month: 1}, report.PrevPeriod)
	assert.Equal(t, analytics.Window{Year: 2025, Month: 3}, report.NextPeriod)
}

func TestSalesReportMonthlyNavigatesYears(t *testing.T) {
	svc := NewAnalyticsService(newFakeOrderRepo())

	report, err := svc.SalesReport(context.Background(), "seller-1", analytics.Monthly, 2025, 0)
	require.NoError(t, err)

	require.Len(t, report.Buckets, 12)
	assert.Equal(t, "Rp 0", report.FormattedTotal)
	assert.Equal(t, 2024, report.PrevPeriod.Year)
	assert.Equal(t, 2026, report.NextPeriod.Year)
}

func TestSalesReportOnlySellerOrders(t *testing.T) {
	mine := pendingOrder("ord-1", "seller-1")
	mine.Status = "completed"
	mine.CreatedAt = "2025-03-05"

	other := model.Order{
		ID:          "ord-2",
		Status:      "completed",
		CreatedAt:   "2025-03-05",
		TotalAmount: 999999,
		Items:       []model.LineItem{{ProductName: "Sate", SellerID: "seller-2"}},
	}

	svc := NewAnalyticsService(newFakeOrderRepo(mine, other))

	report, err := svc.SalesReport(context.Background(), "seller-1", analytics.Daily, 2025, 2)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, report.Total)
}
