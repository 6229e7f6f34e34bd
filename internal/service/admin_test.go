package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tripmates/userd/internal/domain"
	"github.com/tripmates/userd/internal/store/drivers/memory"
	"github.com/tripmates/userd/pkg/jwtx"
)

func newAdminFixture(t *testing.T) (*AdminService, *AuthService, *memory.Store) {
	t.Helper()

	signer, err := jwtx.NewSigner(testSecret, "userd-test", time.Hour)
	require.NoError(t, err)

	st := memory.NewStore()
	return &AdminService{Store: st}, &AuthService{Store: st, Signer: signer}, st
}

func TestListUsersRedactsHashAndOrdersNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin, auth, _ := newAdminFixture(t)

	first, _, err := auth.Register(ctx, "First", "first@example.com", "secret6")
	require.NoError(t, err)
	second, _, err := auth.Register(ctx, "Second", "second@example.com", "secret6")
	require.NoError(t, err)

	users, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	require.Equal(t, second.ID, users[0].ID)
	require.Equal(t, first.ID, users[1].ID)

	for _, u := range users {
		require.Empty(t, u.PasswordHash)
	}
}

func TestUpdateStatusOnlyTouchesRoleAndActive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin, auth, st := newAdminFixture(t)

	user, _, err := auth.Register(ctx, "Frank", "frank@example.com", "secret6")
	require.NoError(t, err)

	require.NoError(t, admin.UpdateStatus(ctx, user.ID, domain.RoleAdmin, false))

	stored, err := st.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, stored.Role)
	require.False(t, stored.Active)
	require.Equal(t, user.Name, stored.Name)
	require.Equal(t, user.Email, stored.Email)
	require.Equal(t, user.PasswordHash, stored.PasswordHash)
}

func TestUpdateStatusUnknownUser(t *testing.T) {
	t.Parallel()
	admin, _, _ := newAdminFixture(t)

	err := admin.UpdateStatus(context.Background(), "01HUNKNOWNUSERID0000000000", "user", true)
	require.ErrorIs(t, err, ErrUserNotFound)
}
