package analytics

// InstituteCount pairs an institute with the size of its roster.
type InstituteCount struct {
	InstituteID   string  `json:"institute_id"`
	InstituteName string  `json:"institute_name"`
	DriverCount   int     `json:"driver_count"`
	Percentage    float64 `json:"percentage"`
}

type Summary struct {
	TotalInstitutes    int              `json:"total_institutes"`
	TotalDrivers       int              `json:"total_drivers"`
	ActiveDrivers      int              `json:"active_drivers"`
	InactiveDrivers    int              `json:"inactive_drivers"`
	ActivePercentage   float64          `json:"active_percentage"`
	InactivePercentage float64          `json:"inactive_percentage"`
	DriversByInstitute []InstituteCount `json:"drivers_by_institute"`
}
