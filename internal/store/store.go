package store

import (
	"context"
	"errors"

	"github.com/tripmates/userd/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (mongo for
// production, memory for tests) implement this.
type Store interface {
	Users() Users

	// EnsureIndexes creates the constraints the service relies on, most
	// importantly the unique email index that closes the registration
	// check-then-create race.
	EnsureIndexes(ctx context.Context) error

	// Close releases any underlying resources.
	Close(ctx context.Context) error

	// Ping verifies the backing database is reachable.
	Ping(ctx context.Context) error
}

// ProfileUpdate carries the mutable profile fields. PhotoURL distinguishes
// "omitted" (nil, keep stored value) from "explicit empty" (overwrite).
type ProfileUpdate struct {
	Name     string
	GroupTag string
	PhotoURL *string
}

type Users interface {
	// GetByID returns a user by id.
	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetByEmail returns a user by lowercased email.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// Create inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken; the driver maps
	// the unique-index violation, so concurrent registrations surface the
	// same conflict as the advisory pre-read.
	Create(ctx context.Context, u domain.User) error

	// UpdateProfile applies a profile update, bumps updated_at and returns
	// the post-update record.
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (domain.User, error)

	// UpdateStatus sets exactly role and active on the target user.
	UpdateStatus(ctx context.Context, id string, role string, active bool) error

	// List returns all users ordered by id descending (newest first).
	List(ctx context.Context) ([]domain.User, error)
}
