package feedback

import "rideinfo-api/internal/logs"

type FeedbackServiceAPI interface {
	Create(fb Feedback) (*Feedback, error)
}

type LogServicePort interface {
	Log(entry logs.SystemLog, payload any) error
}

var _ FeedbackServiceAPI = (*FeedbackService)(nil)
var _ LogServicePort = (*logs.LogService)(nil)
