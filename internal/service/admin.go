package service

import (
	"context"
	"errors"

	"github.com/tripmates/userd/internal/domain"
	"github.com/tripmates/userd/internal/store"
	"github.com/tripmates/userd/pkg/slogx"
)

// AdminService backs the admin user-listing and status endpoints.
type AdminService struct {
	Store store.Store
}

// ListUsers returns every user record ordered newest first. Password hashes
// are redacted before the records leave the service boundary.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.Store.Users().List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list users", "error", err)
		return nil, err
	}

	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// UpdateStatus sets role and active on the target user, leaving every other
// field untouched.
func (s *AdminService) UpdateStatus(ctx context.Context, userID, role string, active bool) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Users().UpdateStatus(ctx, userID, role, active); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to update status", "user_id", userID, "error", err)
		return err
	}

	log.Info("user status updated", "user_id", userID, "role", role, "active", active)
	return nil
}
