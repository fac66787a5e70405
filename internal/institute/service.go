package institute

import (
	"errors"
	"strings"

	"rideinfo-api/internal/driver"

	"gorm.io/gorm"
)

var ErrNameRequired = errors.New("institute name is required")

type InstituteService struct {
	DB *gorm.DB
}

// List returns all institutes newest-first, optionally narrowed by a
// case-insensitive substring match over name, city and state. Filtering
// happens in memory over the fetched rows; collections stay small enough
// for that, and empty fields simply never match.
func (s *InstituteService) List(search string) ([]Institute, error) {
	var institutes []Institute
	result := s.DB.Order("created_at DESC").Find(&institutes)
	if result.Error != nil {
		return nil, result.Error
	}

	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return institutes, nil
	}

	filtered := make([]Institute, 0, len(institutes))
	for _, inst := range institutes {
		if strings.Contains(strings.ToLower(inst.Name), query) ||
			strings.Contains(strings.ToLower(inst.City), query) ||
			strings.Contains(strings.ToLower(inst.State), query) {
			filtered = append(filtered, inst)
		}
	}
	return filtered, nil
}

func (s *InstituteService) Get(id string) (*Institute, error) {
	var inst Institute
	result := s.DB.Where("id = ?", id).First(&inst)
	if result.Error != nil {
		return nil, result.Error
	}
	return &inst, nil
}

func (s *InstituteService) Create(inst Institute) (*Institute, error) {
	if strings.TrimSpace(inst.Name) == "" {
		return nil, ErrNameRequired
	}

	if err := s.DB.Create(&inst).Error; err != nil {
		return nil, err
	}
	return &inst, nil
}

func (s *InstituteService) Update(id string, input UpdateInstituteInput) (*Institute, error) {
	var inst Institute
	if err := s.DB.Where("id = ?", id).First(&inst).Error; err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrNameRequired
		}
		inst.Name = *input.Name
	}
	if input.Address != nil {
		inst.Address = *input.Address
	}
	if input.ContactNumber != nil {
		inst.ContactNumber = *input.ContactNumber
	}
	if input.Email != nil {
		inst.Email = *input.Email
	}
	if input.City != nil {
		inst.City = *input.City
	}
	if input.State != nil {
		inst.State = *input.State
	}

	if err := s.DB.Save(&inst).Error; err != nil {
		return nil, err
	}
	return &inst, nil
}

// Delete removes an institute and its whole driver roster in one
// transaction, so a half-deleted fleet is never observable.
func (s *InstituteService) Delete(id string) error {
	var inst Institute
	if err := s.DB.Where("id = ?", id).First(&inst).Error; err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("institute_id = ?", id).Delete(&driver.Driver{}).Error; err != nil {
			return err
		}
		return tx.Delete(&inst).Error
	})
}
