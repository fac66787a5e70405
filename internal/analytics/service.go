package analytics

import (
	"context"
	"math"

	"rideinfo-api/internal/driver"
	"rideinfo-api/internal/institute"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type AnalyticsService struct {
	DB *gorm.DB
}

func roundPercent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*10000) / 100
}

// GetSummary aggregates the dashboard numbers. The two table scans run
// concurrently; with no drivers all percentages report as zero rather
// than NaN.
func (s *AnalyticsService) GetSummary(ctx context.Context) (*Summary, error) {
	var institutes []institute.Institute
	var drivers []driver.Driver

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.DB.WithContext(ctx).Order("created_at DESC").Find(&institutes).Error
	})
	g.Go(func() error {
		return s.DB.WithContext(ctx).Find(&drivers).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalInstitutes:    len(institutes),
		TotalDrivers:       len(drivers),
		DriversByInstitute: make([]InstituteCount, 0, len(institutes)),
	}

	for _, d := range drivers {
		if d.Status == driver.StatusActive {
			summary.ActiveDrivers++
		} else {
			summary.InactiveDrivers++
		}
	}
	summary.ActivePercentage = roundPercent(summary.ActiveDrivers, summary.TotalDrivers)
	summary.InactivePercentage = roundPercent(summary.InactiveDrivers, summary.TotalDrivers)

	// Linear scan per institute; revisit if fleets grow past a few
	// thousand drivers.
	for _, inst := range institutes {
		count := 0
		for _, d := range drivers {
			if d.InstituteID == inst.ID {
				count++
			}
		}
		summary.DriversByInstitute = append(summary.DriversByInstitute, InstituteCount{
			InstituteID:   inst.ID,
			InstituteName: inst.Name,
			DriverCount:   count,
			Percentage:    roundPercent(count, summary.TotalDrivers),
		})
	}

	return summary, nil
}
