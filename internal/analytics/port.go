package analytics

import "context"

type AnalyticsServiceAPI interface {
	GetSummary(ctx context.Context) (*Summary, error)
}

var _ AnalyticsServiceAPI = (*AnalyticsService)(nil)
