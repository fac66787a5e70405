package auth

import "rideinfo-api/internal/logs"

type AuthServicePort interface {
	CreateUser(user User) (*User, error)
	GetUser(email string) (*User, error)
	GetUserByID(id int) (*User, error)
}

type LogServicePort interface {
	Log(entry logs.SystemLog, payload any) error
}

var _ AuthServicePort = (*AuthService)(nil)
var _ LogServicePort = (*logs.LogService)(nil)
