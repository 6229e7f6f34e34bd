// Package memory is an in-process store.Store used by unit tests. It
// mirrors the mongo driver's semantics, including the unique-email conflict
// and the id-descending listing order.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tripmates/userd/internal/domain"
	"github.com/tripmates/userd/internal/store"
)

type Store struct {
	mu    sync.RWMutex
	users map[string]domain.User // keyed by id
}

func NewStore() *Store {
	return &Store{users: make(map[string]domain.User)}
}

func (s *Store) Users() store.Users { return &usersRepo{s: s} }

func (s *Store) EnsureIndexes(context.Context) error { return nil }

func (s *Store) Close(context.Context) error { return nil }

func (s *Store) Ping(context.Context) error { return nil }

type usersRepo struct {
	s *Store
}

func (r *usersRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (r *usersRepo) Create(_ context.Context, u domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return store.ErrAlreadyExists
		}
	}

	now := time.Now().UTC()
	if u.Role == "" {
		u.Role = domain.DefaultRole
	}
	u.Active = true
	u.CreatedAt = now
	u.UpdatedAt = now

	r.s.users[u.ID] = u
	return nil
}

func (r *usersRepo) UpdateProfile(_ context.Context, id string, update store.ProfileUpdate) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}

	u.Name = update.Name
	u.GroupTag = update.GroupTag
	if update.PhotoURL != nil {
		u.PhotoURL = *update.PhotoURL
	}
	u.UpdatedAt = time.Now().UTC()

	r.s.users[id] = u
	return u, nil
}

func (r *usersRepo) UpdateStatus(_ context.Context, id string, role string, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return store.ErrNotFound
	}

	u.Role = role
	u.Active = active
	u.UpdatedAt = time.Now().UTC()

	r.s.users[id] = u
	return nil
}

func (r *usersRepo) List(_ context.Context) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, u)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })
	return users, nil
}
