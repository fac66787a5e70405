package driver

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// BloodGroups is the accepted set for the blood_group field; empty means
// not recorded.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

type Driver struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	BusNumber        string    `gorm:"size:100;not null;column:bus_number" json:"bus_number"`
	InstituteID      string    `gorm:"size:36;index;not null;column:institute_id" json:"institute_id"`
	UserID           int       `gorm:"index;not null" json:"user_id"`
	ContactNumber    string    `gorm:"size:50;column:contact_number" json:"contact_number"`
	Email            string    `gorm:"size:100" json:"email"`
	LicenseNumber    string    `gorm:"size:100;column:license_number" json:"license_number"`
	Address          string    `gorm:"type:text" json:"address"`
	EmergencyContact string    `gorm:"size:50;column:emergency_contact" json:"emergency_contact"`
	BloodGroup       string    `gorm:"size:5;column:blood_group" json:"blood_group"`
	JoiningDate      string    `gorm:"size:10;column:joining_date" json:"joining_date"`
	Status           string    `gorm:"size:20;default:active" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

func (Driver) TableName() string {
	return "drivers"
}

// UpdateDriverInput deliberately has no institute_id field: a driver
// never moves between institutes after creation.
type UpdateDriverInput struct {
	Name             *string `json:"name"`
	BusNumber        *string `json:"bus_number"`
	ContactNumber    *string `json:"contact_number"`
	Email            *string `json:"email"`
	LicenseNumber    *string `json:"license_number"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergency_contact"`
	BloodGroup       *string `json:"blood_group"`
	JoiningDate      *string `json:"joining_date"`
	Status           *string `json:"status"`
}
