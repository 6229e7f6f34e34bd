package service

import (
	"context"
	"errors"

	"github.com/tripmates/userd/internal/domain"
	"github.com/tripmates/userd/internal/store"
	"github.com/tripmates/userd/pkg/jwtx"
	"github.com/tripmates/userd/pkg/slogx"
)

// ProfileService updates the mutable profile fields and re-issues the
// session token so the claims track the new values.
type ProfileService struct {
	Store  store.Store
	Signer *jwtx.Signer
}

// Update applies the profile change for userID and returns the post-update
// record plus a re-issued token. Role is carried over unchanged from the
// stored record.
func (s *ProfileService) Update(ctx context.Context, userID string, update store.ProfileUpdate) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().UpdateProfile(ctx, userID, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrUserNotFound
		}
		log.Error("failed to update profile", "user_id", userID, "error", err)
		return domain.User{}, "", err
	}

	token, err := s.Signer.Sign(user.ID, user.Name, user.GroupTag, user.PhotoURL, user.Role)
	if err != nil {
		log.Error("failed to re-issue session token", "user_id", userID, "error", err)
		return domain.User{}, "", err
	}

	log.Info("profile updated", "user_id", userID)
	return user, token, nil
}
