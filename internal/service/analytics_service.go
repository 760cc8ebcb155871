package service

import (
	"context"

	"smartkuliner-seller-service/internal/analytics"
	"smartkuliner-seller-service/internal/dto"
)

// AnalyticsService fetches a seller's orders and hands them to the pure
// aggregator. Buckets are recomputed on every request, never cached.
type AnalyticsService struct {
	repo OrderRepository
}

func NewAnalyticsService(r OrderRepository) *AnalyticsService {
	return &AnalyticsService{repo: r}
}

func (s *AnalyticsService) SalesReport(ctx context.Context, sellerID string, g analytics.Granularity, year, month int) (*dto.SalesReportResponse, error) {
	orders, err := s.repo.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	report := analytics.Aggregate(orders, g, year, month)
	window := analytics.Window{Year: year, Month: month}

	return &dto.SalesReportResponse{
		Granularity:    string(g),
		Period:         window,
		Buckets:        report.Buckets,
		Total:          report.Total,
		FormattedTotal: analytics.FormatIDR(report.Total),
		PrevPeriod:     window.Prev(g),
		NextPeriod:     window.Next(g),
	}, nil
}
