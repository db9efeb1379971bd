package identity

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clothes-shop/clothes/internal/infra"
)

// Runs against a real database only when TEST_DATABASE_URL is set.
func newPostgresRepository(t *testing.T) *PostgresRepository {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	require.NoError(t, infra.Migrate(ctx, url))

	pool, err := infra.NewPostgresPool(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE users RESTART IDENTITY`)
	require.NoError(t, err)
	return NewPostgresRepository(pool)
}

func TestPostgresRepositoryRoundTrip(t *testing.T) {
	repo := newPostgresRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, Identity{Email: "a@b.com", PasswordDigest: "digest", FullName: "Jane Doe"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", byID.Email)
	require.Equal(t, "digest", byID.PasswordDigest)
	require.Empty(t, byID.Phone)

	byEmail, err := repo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)

	_, err = repo.FindByID(ctx, created.ID+1000)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresRepositoryDuplicateEmail(t *testing.T) {
	repo := newPostgresRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, Identity{Email: "dup@b.com", PasswordDigest: "d", FullName: "Jane Doe", Phone: "+12015550123"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, Identity{Email: "dup@b.com", PasswordDigest: "d", FullName: "John Doe"})
	require.ErrorIs(t, err, ErrDuplicateEmail)
}
