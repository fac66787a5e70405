package institute

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Institute struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	UserID        int       `gorm:"index;not null" json:"user_id"`
	Address       string    `gorm:"type:text" json:"address"`
	ContactNumber string    `gorm:"size:50;column:contact_number" json:"contact_number"`
	Email         string    `gorm:"size:100" json:"email"`
	City          string    `gorm:"size:100" json:"city"`
	State         string    `gorm:"size:100" json:"state"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (i *Institute) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

func (Institute) TableName() string {
	return "institutes"
}

type UpdateInstituteInput struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email"`
	City          *string `json:"city"`
	State         *string `json:"state"`
}
