package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartkuliner-seller-service/internal/model"
)

func completedOrder(createdAt string, amount float64) model.Order {
	return model.Order{Status: "completed", CreatedAt: createdAt, TotalAmount: amount}
}

func TestAggregateDailyMarch2025(t *testing.T) {
	orders := []model.Order{
		completedOrder("2025-03-05", 50000),
		completedOrder("2025-03-05", 30000),
		{Status: "pending", CreatedAt: "2025-03-06", TotalAmount: 10000},
	}

	report := Aggregate(orders, Daily, 2025, 2)

	require.Len(t, report.Buckets, 31)
	assert.Equal(t, 80000.0, report.Buckets[4].Amount)
	assert.Equal(t, 0.0, report.Buckets[5].Amount)
	for i, b := range report.Buckets {
		if i != 4 {
			assert.Zero(t, b.Amount, "day %d", i+1)
		}
	}
	assert.Equal(t, 80000.0, report.Total)
	assert.Equal(t, "5", report.Buckets[4].Label)
	assert.Equal(t, "5 Maret 2025", report.Buckets[4].Tooltip)
}

func TestAggregateDailyBucketCountIndependentOfOrders(t *testing.T) {
	// 31-day month, no orders at all.
	report := Aggregate(nil, Daily, 2025, 0)
	require.Len(t, report.Buckets, 31)
	for _, b := range report.Buckets {
		assert.Zero(t, b.Amount)
	}
	assert.Zero(t, report.Total)

	// February of a leap year.
	assert.Len(t, Aggregate(nil, Daily, 2024, 1).Buckets, 29)
	assert.Len(t, Aggregate(nil, Daily, 2025, 1).Buckets, 28)
}

func TestAggregateDailyExcludesOtherWindows(t *testing.T) {
	orders := []model.Order{
		completedOrder("2025-04-05", 70000),
		completedOrder("2024-03-05", 60000),
		completedOrder("2025-03-10T14:00:00Z", 25000),
	}

	report := Aggregate(orders, Daily, 2025, 2)
	assert.Equal(t, 25000.0, report.Total)
	assert.Equal(t, 25000.0, report.Buckets[9].Amount)
}

func TestAggregateSkipsMalformedCreatedAt(t *testing.T) {
	orders := []model.Order{
		completedOrder("not-a-date", 99999),
		completedOrder("", 99999),
		completedOrder("2025-03-05", 40000),
	}

	report := Aggregate(orders, Daily, 2025, 2)
	assert.Equal(t, 40000.0, report.Total)
}

func TestAggregateIdempotent(t *testing.T) {
	orders := []model.Order{
		completedOrder("2025-03-05", 50000),
		completedOrder("2025-03-21", 12000),
	}

	first := Aggregate(orders, Daily, 2025, 2)
	second := Aggregate(orders, Daily, 2025, 2)
	assert.Equal(t, first, second)
}

func TestAggregateWeekly(t *testing.T) {
	// March 2025 starts on a Saturday, so day 1 sits in week 1 and
	// day 2 already rolls into week 2.
	orders := []model.Order{
		completedOrder("2025-03-01", 10000),
		completedOrder("2025-03-02", 20000),
		completedOrder("2025-03-08", 5000),
		completedOrder("2025-03-22", 7000),
	}

	report := Aggregate(orders, Weekly, 2025, 2)

	require.Len(t, report.Buckets, 4)
	assert.Equal(t, "Week 1", report.Buckets[0].Label)
	assert.Equal(t, "Week 4", report.Buckets[3].Label)
	assert.Equal(t, 10000.0, report.Buckets[0].Amount)
	assert.Equal(t, 25000.0, report.Buckets[1].Amount)
	assert.Equal(t, 7000.0, report.Buckets[3].Amount)
	assert.Equal(t, 42000.0, report.Total)
}

func TestAggregateWeeklyFifthWeekDropped(t *testing.T) {
	// Days past the 4-week grid match no bucket and fall off the
	// chart entirely; March 23 2025 computes to week 5.
	orders := []model.Order{
		completedOrder("2025-03-22", 7000),
		completedOrder("2025-03-23", 90000),
		completedOrder("2025-03-31", 90000),
	}

	report := Aggregate(orders, Weekly, 2025, 2)

	require.Len(t, report.Buckets, 4)
	assert.Equal(t, 7000.0, report.Total)
	for i, b := range report.Buckets {
		if i != 3 {
			assert.Zero(t, b.Amount)
		}
	}
}

func TestAggregateWeeklySundayAlignedMonth(t *testing.T) {
	// June 2025 starts on a Sunday: days 1-7 are week 1, day 8 week 2.
	orders := []model.Order{
		completedOrder("2025-06-07", 1000),
		completedOrder("2025-06-08", 2000),
	}

	report := Aggregate(orders, Weekly, 2025, 5)
	assert.Equal(t, 1000.0, report.Buckets[0].Amount)
	assert.Equal(t, 2000.0, report.Buckets[1].Amount)
}

func TestAggregateMonthly(t *testing.T) {
	orders := []model.Order{
		completedOrder("2025-01-15", 10000),
		completedOrder("2025-03-05", 50000),
		completedOrder("2025-03-20", 30000),
		completedOrder("2025-12-31", 5000),
		completedOrder("2024-06-01", 99999),
	}

	// month argument is ignored for monthly reports
	report := Aggregate(orders, Monthly, 2025, 7)

	require.Len(t, report.Buckets, 12)
	wantLabels := []string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}
	for i, b := range report.Buckets {
		assert.Equal(t, wantLabels[i], b.Label)
	}
	assert.Equal(t, "Januari", report.Buckets[0].Tooltip)
	assert.Equal(t, "Desember", report.Buckets[11].Tooltip)

	assert.Equal(t, 10000.0, report.Buckets[0].Amount)
	assert.Equal(t, 80000.0, report.Buckets[2].Amount)
	assert.Equal(t, 5000.0, report.Buckets[11].Amount)
	assert.Equal(t, 95000.0, report.Total)
}

func TestAggregateUnknownGranularity(t *testing.T) {
	report := Aggregate([]model.Order{completedOrder("2025-03-05", 1)}, Granularity("hourly"), 2025, 2)
	assert.Empty(t, report.Buckets)
	assert.Zero(t, report.Total)
}

func TestWindowNavigation(t *testing.T) {
	w := Window{Year: 2025, Month: 0}

	assert.Equal(t, Window{Year: 2024, Month: 11}, w.Prev(Daily))
	assert.Equal(t, Window{Year: 2025, Month: 1}, w.Next(Weekly))

	dec := Window{Year: 2025, Month: 11}
	assert.Equal(t, Window{Year: 2026, Month: 0}, dec.Next(Daily))
	assert.Equal(t, Window{Year: 2025, Month: 10}, dec.Prev(Weekly))

	// Monthly steps whole years and keeps the month untouched.
	assert.Equal(t, Window{Year: 2024, Month: 0}, w.Prev(Monthly))
	assert.Equal(t, Window{Year: 2026, Month: 0}, w.Next(Monthly))
}
