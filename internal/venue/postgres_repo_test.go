package venue

import (
	"context"
	"testing"
	"time"

	"fyyur/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepo_CreateSearchDelete(t *testing.T) {
	pool := testutil.PostgresPool(t)
	repo := NewPostgresRepo(pool, 3*time.Second)
	ctx := context.Background()

	token := uuid.NewString()[:8]
	v := musicalHop()
	v.Name = "The Venue Room " + token
	v.Genres = []string{"Jazz", "Blues"}
	require.NoError(t, repo.Create(ctx, &v))

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	found, err := repo.Search(ctx, "VENUE ROOM "+token)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, v.ID, found[0].ID)

	require.NoError(t, repo.Delete(ctx, v.ID))
	assert.ErrorIs(t, repo.Delete(ctx, v.ID), ErrNotFound)
	_, err = repo.GetByID(ctx, v.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
