package driver

import "rideinfo-api/internal/logs"

type DriverServiceAPI interface {
	List(instituteID, search string) ([]Driver, error)
	Get(id string) (*Driver, error)
	Create(d Driver) (*Driver, error)
	CreateBulk(instituteID, raw string, userID int) ([]Driver, error)
	Update(id string, input UpdateDriverInput) (*Driver, error)
	Delete(id string) error
}

type LogServicePort interface {
	Log(entry logs.SystemLog, payload any) error
}

var _ DriverServiceAPI = (*DriverService)(nil)
var _ LogServicePort = (*logs.LogService)(nil)
