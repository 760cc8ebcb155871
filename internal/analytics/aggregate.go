// Package analytics turns a seller's raw order list into the fixed-size
// revenue series the dashboard charts. Pure computation: no I/O, same
// inputs always give the same report.
package analytics

import (
	"strconv"
	"time"

	"smartkuliner-seller-service/internal/model"
	"smartkuliner-seller-service/internal/status"
)

type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

// Bucket is one chart slot: a day, a week-of-month, or a month.
type Bucket struct {
	Label   string  `json:"label"`
	Tooltip string  `json:"tooltip"`
	Amount  float64 `json:"amount"`
}

type Report struct {
	Buckets []Bucket `json:"buckets"`
	Total   float64  `json:"total"`
}

const weeksPerMonth = 4

var monthShort = [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}
var monthFull = [12]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli", "Agustus", "September", "Oktober", "November", "Desember"}

// Aggregate buckets completed orders into a fixed-length series.
// month is 0-indexed and ignored for Monthly. Orders outside the window,
// not completed, or with an unparseable createdAt are skipped; the
// series length never depends on the input.
func Aggregate(orders []model.Order, g Granularity, year, month int) Report {
	var buckets []Bucket
	switch g {
	case Daily:
		buckets = make([]Bucket, daysInMonth(year, month))
		for i := range buckets {
			label := strconv.Itoa(i + 1)
			buckets[i] = Bucket{Label: label, Tooltip: label + " " + monthFull[month] + " " + strconv.Itoa(year)}
		}
	case Weekly:
		buckets = make([]Bucket, weeksPerMonth)
		for i := range buckets {
			label := "Week " + strconv.Itoa(i+1)
			buckets[i] = Bucket{Label: label, Tooltip: label}
		}
	case Monthly:
		buckets = make([]Bucket, 12)
		for i := range buckets {
			buckets[i] = Bucket{Label: monthShort[i], Tooltip: monthFull[i]}
		}
	default:
		return Report{Buckets: []Bucket{}}
	}

	total := 0.0
	for _, o := range orders {
		if status.Status(o.Status) != status.Completed {
			continue
		}
		t, ok := parseCreatedAt(o.CreatedAt)
		if !ok || t.Year() != year {
			continue
		}
		idx := -1
		switch g {
		case Daily:
			if int(t.Month())-1 == month {
				idx = t.Day() - 1
			}
		case Weekly:
			if int(t.Month())-1 == month {
				w := weekOfMonth(year, month, t.Day())
				// Days landing past week 4 match no bucket and stay
				// off the chart.
				if w <= weeksPerMonth {
					idx = w - 1
				}
			}
		case Monthly:
			idx = int(t.Month()) - 1
		}
		if idx < 0 {
			continue
		}
		buckets[idx].Amount += o.TotalAmount
		total += o.TotalAmount
	}

	return Report{Buckets: buckets, Total: total}
}

// parseCreatedAt accepts the store's ISO-8601 timestamps and plain
// dates. Anything else marks the record unusable for bucketing.
func parseCreatedAt(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func daysInMonth(year, month int) int {
	// Day 0 of the next month normalizes to this month's last day.
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// weekOfMonth returns the 1-based week index of a day, counting weeks
// from the Sunday-aligned grid the calendar widget draws: the weekday
// of day 1 shifts every day of the month right by that offset.
func weekOfMonth(year, month, day int) int {
	offset := int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
	return (day + offset + 6) / 7
}

// Window is one reporting period: a calendar month for daily/weekly
// granularity, a calendar year for monthly. Month is 0-indexed.
type Window struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Prev steps the window back one period.
func (w Window) Prev(g Granularity) Window {
	if g == Monthly {
		return Window{Year: w.Year - 1, Month: w.Month}
	}
	if w.Month == 0 {
		return Window{Year: w.Year - 1, Month: 11}
	}
	return Window{Year: w.Year, Month: w.Month - 1}
}

// Next steps the window forward one period.
func (w Window) Next(g Granularity) Window {
	if g == Monthly {
		return Window{Year: w.Year + 1, Month: w.Month}
	}
	if w.Month == 11 {
		return Window{Year: w.Year + 1, Month: 0}
	}
	return Window{Year: w.Year, Month: w.Month + 1}
}
