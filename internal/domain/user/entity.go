package user

import "time"

type User struct {
	ID           string
	CompanyID    *string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
