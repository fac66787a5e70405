package logs

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"rideinfo-api/internal/util"

	"gorm.io/gorm"
)

type LogService struct {
	DB *gorm.DB
}

// Log persists one activity log row. Metadata (struct/map) is stored as JSON.
func (ls *LogService) Log(entry SystemLog, metadata interface{}) error {
	newLog := SystemLog{
		Level:     entry.Level,
		Service:   entry.Service,
		UserID:    entry.UserID,
		Action:    entry.Action,
		Message:   entry.Message,
		CreatedAt: time.Now(),
	}

	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			newLog.Metadata = b
		}
	}

	return ls.DB.Create(&newLog).Error
}

func (ls *LogService) GetLogs(input LogFilterInput) ([]SystemLog, int64, int, error) {
	if input.Page <= 0 {
		input.Page = 1
	}
	if input.PageSize <= 0 || input.PageSize > 100 {
		input.PageSize = 20
	}

	base := ls.DB.Model(&SystemLog{})

	// Default window: last 30 days when no explicit range
	if input.StartDate == nil && input.EndDate == nil {
		base = base.Where("created_at >= ?", time.Now().AddDate(0, 0, -30))
	}

	if input.UserID != nil {
		base = base.Where("user_id = ?", *input.UserID)
	}
	if input.Level != nil && strings.TrimSpace(*input.Level) != "" {
		base = base.Where("level = ?", strings.TrimSpace(*input.Level))
	}
	if input.Service != nil && strings.TrimSpace(*input.Service) != "" {
		base = base.Where("service = ?", strings.TrimSpace(*input.Service))
	}
	if input.Action != nil && strings.TrimSpace(*input.Action) != "" {
		base = base.Where("action = ?", strings.TrimSpace(*input.Action))
	}

	start, hasStart, endExclusive, hasEnd, err := util.ParseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, 0, 0, err
	}
	if hasStart {
		base = base.Where("created_at >= ?", start)
	}
	if hasEnd {
		base = base.Where("created_at < ?", endExclusive)
	}

	if input.Search != nil && strings.TrimSpace(*input.Search) != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(*input.Search)) + "%"
		base = base.Where(
			"LOWER(action) LIKE ? OR LOWER(message) LIKE ? OR LOWER(service) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(input.PageSize)))
	if totalPages == 0 {
		totalPages = 1
	}

	var rows []SystemLog
	if err := base.
		Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(input.PageSize).
		Offset((input.Page - 1) * input.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, 0, err
	}

	return rows, total, totalPages, nil
}
