package domain

import "time"

// User is the domain entity for an account. PasswordHash is the scrypt
// stored form and never leaves the server. PartnerUsername is a
// denormalized reference: partner lookup is a live query by username.
type User struct {
	ID              int64
	Username        string
	PasswordHash    string
	PartnerUsername *string
	Points          int64
	CreatedAt       time.Time
}
