package driver

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNameRequired      = errors.New("driver name is required")
	ErrBusNumberRequired = errors.New("bus number is required")
	ErrInstituteRequired = errors.New("institute id is required")
	ErrInvalidBloodGroup = errors.New("invalid blood group")
	ErrInvalidStatus     = errors.New("status must be active or inactive")
)

type DriverService struct {
	DB *gorm.DB
}

// List returns drivers newest-first, optionally scoped to one institute
// and narrowed by a case-insensitive substring match over name, bus
// number and contact number. Filtering happens in memory over the
// fetched rows; rosters stay small enough for that.
func (s *DriverService) List(instituteID, search string) ([]Driver, error) {
	query := s.DB.Order("created_at DESC")
	if instituteID != "" {
		query = query.Where("institute_id = ?", instituteID)
	}

	var drivers []Driver
	if err := query.Find(&drivers).Error; err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return drivers, nil
	}

	filtered := make([]Driver, 0, len(drivers))
	for _, d := range drivers {
		if strings.Contains(strings.ToLower(d.Name), needle) ||
			strings.Contains(strings.ToLower(d.BusNumber), needle) ||
			strings.Contains(strings.ToLower(d.ContactNumber), needle) {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func (s *DriverService) Get(id string) (*Driver, error) {
	var d Driver
	if err := s.DB.Where("id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func validBloodGroup(bg string) bool {
	if bg == "" {
		return true
	}
	for _, v := range BloodGroups {
		if v == bg {
			return true
		}
	}
	return false
}

func validStatus(status string) bool {
	return status == StatusActive || status == StatusInactive
}

func applyDefaults(d *Driver) {
	if d.Status == "" {
		d.Status = StatusActive
	}
	if d.JoiningDate == "" {
		d.JoiningDate = time.Now().Format("2006-01-02")
	}
}

func (s *DriverService) Create(d Driver) (*Driver, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.BusNumber = strings.TrimSpace(d.BusNumber)

	if d.Name == "" {
		return nil, ErrNameRequired
	}
	if d.BusNumber == "" {
		return nil, ErrBusNumberRequired
	}
	if strings.TrimSpace(d.InstituteID) == "" {
		return nil, ErrInstituteRequired
	}
	if !validBloodGroup(d.BloodGroup) {
		return nil, ErrInvalidBloodGroup
	}
	applyDefaults(&d)
	if !validStatus(d.Status) {
		return nil, ErrInvalidStatus
	}

	if err := s.DB.Create(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateBulk parses pasted roster text, one driver per line as
// "name,bus number". Only the first comma splits, so bus numbers may
// themselves contain commas. Blank lines are skipped; a missing name
// becomes "Unknown" and a missing bus number becomes "N/A". All rows
// insert in a single transaction.
func (s *DriverService) CreateBulk(instituteID, raw string, userID int) ([]Driver, error) {
	if strings.TrimSpace(instituteID) == "" {
		return nil, ErrInstituteRequired
	}

	var drivers []Driver
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}

		name := line
		bus := ""
		if parts := strings.SplitN(line, ",", 2); len(parts) == 2 {
			name = parts[0]
			bus = parts[1]
		}
		name = strings.TrimSpace(name)
		bus = strings.TrimSpace(bus)
		if name == "" {
			name = "Unknown"
		}
		if bus == "" {
			bus = "N/A"
		}

		d := Driver{
			Name:        name,
			BusNumber:   bus,
			InstituteID: instituteID,
			UserID:      userID,
		}
		applyDefaults(&d)
		drivers = append(drivers, d)
	}

	if len(drivers) == 0 {
		return []Driver{}, nil
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&drivers).Error
	})
	if err != nil {
		return nil, err
	}
	return drivers, nil
}

func (s *DriverService) Update(id string, input UpdateDriverInput) (*Driver, error) {
	var d Driver
	if err := s.DB.Where("id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrNameRequired
		}
		d.Name = strings.TrimSpace(*input.Name)
	}
	if input.BusNumber != nil {
		if strings.TrimSpace(*input.BusNumber) == "" {
			return nil, ErrBusNumberRequired
		}
		d.BusNumber = strings.TrimSpace(*input.BusNumber)
	}
	if input.ContactNumber != nil {
		d.ContactNumber = *input.ContactNumber
	}
	if input.Email != nil {
		d.Email = *input.Email
	}
	if input.LicenseNumber != nil {
		d.LicenseNumber = *input.LicenseNumber
	}
	if input.Address != nil {
		d.Address = *input.Address
	}
	if input.EmergencyContact != nil {
		d.EmergencyContact = *input.EmergencyContact
	}
	if input.BloodGroup != nil {
		if !validBloodGroup(*input.BloodGroup) {
			return nil, ErrInvalidBloodGroup
		}
		d.BloodGroup = *input.BloodGroup
	}
	if input.JoiningDate != nil {
		d.JoiningDate = *input.JoiningDate
	}
	if input.Status != nil {
		if !validStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		d.Status = *input.Status
	}

	if err := s.DB.Save(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DriverService) Delete(id string) error {
	var d Driver
	if err := s.DB.Where("id = ?", id).First(&d).Error; err != nil {
		return err
	}
	return s.DB.Delete(&d).Error
}
