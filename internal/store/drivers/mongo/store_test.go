package mongo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/tripmates/userd/internal/domain"
	"github.com/tripmates/userd/internal/store"
	"github.com/tripmates/userd/pkg/idx"
)

// startMongo spins up a throwaway MongoDB container and returns a connected
// Store. Requires a working Docker daemon; skipped in -short runs.
func startMongo(t *testing.T) *Store {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-backed store test in short mode")
	}

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017/tcp")
	require.NoError(t, err)

	st, err := NewStore(ctx, fmt.Sprintf("mongodb://%s:%s", host, port.Port()), "userd_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(ctx) })

	require.NoError(t, st.EnsureIndexes(ctx))
	return st
}

func TestMongoStore(t *testing.T) {
	st := startMongo(t)
	ctx := context.Background()

	t.Run("unique index rejects duplicate email", func(t *testing.T) {
		email := "dup@example.com"
		require.NoError(t, st.Users().Create(ctx, domain.User{
			ID: idx.New().String(), Name: "First", Email: email, PasswordHash: "h",
		}))
		err := st.Users().Create(ctx, domain.User{
			ID: idx.New().String(), Name: "Second", Email: email, PasswordHash: "h",
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("create applies role and active defaults", func(t *testing.T) {
		id := idx.New().String()
		require.NoError(t, st.Users().Create(ctx, domain.User{
			ID: id, Name: "Defaults", Email: "defaults@example.com", PasswordHash: "h",
		}))

		u, err := st.Users().GetByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, domain.DefaultRole, u.Role)
		require.True(t, u.Active)
	})

	t.Run("lookup by email and missing lookups", func(t *testing.T) {
		u, err := st.Users().GetByEmail(ctx, "defaults@example.com")
		require.NoError(t, err)
		require.Equal(t, "Defaults", u.Name)

		_, err = st.Users().GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = st.Users().GetByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("profile update keeps photoURL unless present", func(t *testing.T) {
		id := idx.New().String()
		require.NoError(t, st.Users().Create(ctx, domain.User{
			ID: id, Name: "Photo", Email: "photo@example.com", PasswordHash: "h", PhotoURL: "keep-me",
		}))

		u, err := st.Users().UpdateProfile(ctx, id, store.ProfileUpdate{Name: "Photo2", GroupTag: "surfers"})
		require.NoError(t, err)
		require.Equal(t, "keep-me", u.PhotoURL)
		require.Equal(t, "Photo2", u.Name)
		require.Equal(t, "surfers", u.GroupTag)

		fresh := "new-url"
		u, err = st.Users().UpdateProfile(ctx, id, store.ProfileUpdate{Name: "Photo2", GroupTag: "surfers", PhotoURL: &fresh})
		require.NoError(t, err)
		require.Equal(t, "new-url", u.PhotoURL)
	})

	t.Run("status update and listing order", func(t *testing.T) {
		id := idx.New().String()
		require.NoError(t, st.Users().Create(ctx, domain.User{
			ID: id, Name: "Latest", Email: "latest@example.com", PasswordHash: "h",
		}))

		require.NoError(t, st.Users().UpdateStatus(ctx, id, domain.RoleAdmin, false))
		u, err := st.Users().GetByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, u.Role)
		require.False(t, u.Active)

		require.ErrorIs(t, st.Users().UpdateStatus(ctx, idx.New().String(), "user", true), store.ErrNotFound)

		users, err := st.Users().List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, users)
		require.Equal(t, id, users[0].ID, "newest user should come first")
		for i := 1; i < len(users); i++ {
			require.Greater(t, users[i-1].ID, users[i].ID)
		}
	})
}
