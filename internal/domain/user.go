package domain

import "time"

// Default values applied by the store when registration leaves role and
// active unset.
const (
	DefaultRole = "user"
	RoleAdmin   = "admin"
)

// User is the persisted account record. Email is stored lowercased and is
// unique. PasswordHash never leaves the service layer in responses.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	GroupTag     string
	PhotoURL     string
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
