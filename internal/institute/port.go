package institute

import "rideinfo-api/internal/logs"

type InstituteServiceAPI interface {
	List(search string) ([]Institute, error)
	Get(id string) (*Institute, error)
	Create(inst Institute) (*Institute, error)
	Update(id string, input UpdateInstituteInput) (*Institute, error)
	Delete(id string) error
}

type LogServicePort interface {
	Log(entry logs.SystemLog, payload any) error
}

var _ InstituteServiceAPI = (*InstituteService)(nil)
var _ LogServicePort = (*logs.LogService)(nil)
