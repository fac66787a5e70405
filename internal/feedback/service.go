package feedback

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrMessageRequired = errors.New("feedback message is required")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

type FeedbackService struct {
	DB *gorm.DB
}

// Create stores one feedback entry. A zero rating means the form was
// submitted without touching the stars and defaults to 5.
func (s *FeedbackService) Create(fb Feedback) (*Feedback, error) {
	fb.Message = strings.TrimSpace(fb.Message)
	if fb.Message == "" {
		return nil, ErrMessageRequired
	}

	if fb.Rating == 0 {
		fb.Rating = 5
	}
	if fb.Rating < 1 || fb.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if err := s.DB.Create(&fb).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}
