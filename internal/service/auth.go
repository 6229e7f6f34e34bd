package service

import (
	"context"
	"errors"
	"strings"

	"github.com/tripmates/userd/internal/domain"
	"github.com/tripmates/userd/internal/store"
	"github.com/tripmates/userd/pkg/cryptox"
	"github.com/tripmates/userd/pkg/idx"
	"github.com/tripmates/userd/pkg/jwtx"
	"github.com/tripmates/userd/pkg/slogx"
)

// MinPasswordLength is the registration password policy.
const MinPasswordLength = 6

var (
	ErrPasswordTooShort   = errors.New("password too short")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountSuspended   = errors.New("account suspended")
)

// AuthService handles registration and login, issuing a session token on
// success.
type AuthService struct {
	Store  store.Store
	Signer *jwtx.Signer
}

// Register creates a new user account and returns the persisted record plus
// a fresh session token. Role and active are left to store defaults.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	if len(password) < MinPasswordLength {
		return domain.User{}, "", ErrPasswordTooShort
	}

	email = normalizeEmail(email)

	// Advisory pre-read for a friendly error; the unique index is the real
	// guarantee and a lost race below maps to the same conflict.
	_, err := s.Store.Users().GetByEmail(ctx, email)
	if err == nil {
		return domain.User{}, "", ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check email availability", "error", err)
		return domain.User{}, "", err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return domain.User{}, "", err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.Store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, "", ErrEmailTaken
		}
		log.Error("failed to create user", "email", email, "error", err)
		return domain.User{}, "", err
	}

	// Read back so the response and token carry the store-applied defaults.
	created, err := s.Store.Users().GetByID(ctx, user.ID)
	if err != nil {
		log.Error("failed to load created user", "user_id", user.ID, "error", err)
		return domain.User{}, "", err
	}

	token, err := s.signSession(created)
	if err != nil {
		log.Error("failed to sign session token", "user_id", created.ID, "error", err)
		return domain.User{}, "", err
	}

	log.Info("user registered", "user_id", created.ID, "grouptag", created.GroupTag)
	return created, token, nil
}

// Login verifies credentials and returns the user plus a fresh session
// token. The active check runs after credential verification so a wrong
// password on a suspended account reports invalid credentials, not
// suspension.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	email = normalizeEmail(email)

	user, err := s.Store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrUserNotFound
		}
		log.Error("failed to look up user", "error", err)
		return domain.User{}, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Info("login rejected: bad password", "user_id", user.ID)
			return domain.User{}, "", ErrInvalidCredentials
		}
		log.Error("failed to verify password", "user_id", user.ID, "error", err)
		return domain.User{}, "", err
	}

	if !user.Active {
		log.Info("login rejected: account suspended", "user_id", user.ID)
		return domain.User{}, "", ErrAccountSuspended
	}

	token, err := s.signSession(user)
	if err != nil {
		log.Error("failed to sign session token", "user_id", user.ID, "error", err)
		return domain.User{}, "", err
	}

	return user, token, nil
}

func (s *AuthService) signSession(u domain.User) (string, error) {
	return s.Signer.Sign(u.ID, u.Name, u.GroupTag, u.PhotoURL, u.Role)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
