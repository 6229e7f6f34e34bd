package httpapi

import (
	"time"

	"github.com/tripmates/userd/internal/domain"
)

// sessionResult is the register/login response body.
type sessionResult struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	GroupTag string `json:"grouptag"`
	PhotoURL string `json:"photoURL"`
	Token    string `json:"token"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

func newSessionResult(u domain.User, token string) sessionResult {
	return sessionResult{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		GroupTag: u.GroupTag,
		PhotoURL: u.PhotoURL,
		Token:    token,
		Role:     u.Role,
		Active:   u.Active,
	}
}

// profileResult intentionally omits id/email/role/active; the caller already
// holds them and only the mutated fields plus the re-issued token go back.
type profileResult struct {
	Name     string `json:"name"`
	GroupTag string `json:"grouptag"`
	PhotoURL string `json:"photoURL"`
	Token    string `json:"token"`
}

// userRecord is the admin listing shape. No password hash.
type userRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	GroupTag  string    `json:"grouptag"`
	PhotoURL  string    `json:"photoURL"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newUserRecord(u domain.User) userRecord {
	return userRecord{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		GroupTag:  u.GroupTag,
		PhotoURL:  u.PhotoURL,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
