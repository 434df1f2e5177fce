package artist

import (
	"context"
	"testing"

	"fyyur/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepo_RoundTripAndSearch(t *testing.T) {
	repo := NewSQLiteRepo(testutil.MemoryDB(t))
	ctx := context.Background()

	petals := Artist{
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		Genres:       []string{"Rock n Roll"},
		ImageLink:    "https://images.unsplash.com/photo-1549213783-8284d0336c4f",
		FacebookLink: "https://www.facebook.com/GunsNPetals",
	}
	sax := Artist{Name: "The Wild Sax Band", City: "San Francisco", State: "CA", Genres: []string{"Jazz", "Classical"}}
	require.NoError(t, repo.Create(ctx, &petals))
	require.NoError(t, repo.Create(ctx, &sax))

	got, err := repo.GetByID(ctx, petals.ID)
	require.NoError(t, err)
	assert.Equal(t, petals, got)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []string{"Jazz", "Classical"}, all[1].Genres)

	found, err := repo.Search(ctx, "A")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = repo.Search(ctx, "band")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, sax.ID, found[0].ID)

	found, err = repo.Search(ctx, "francisco")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestSQLiteRepo_Update(t *testing.T) {
	repo := NewSQLiteRepo(testutil.MemoryDB(t))
	ctx := context.Background()

	a := Artist{Name: "Matt Quevedo", City: "New York", State: "NY", Genres: []string{"Jazz"}}
	require.NoError(t, repo.Create(ctx, &a))

	a.Genres = []string{"Jazz", "Blues"}
	a.Phone = "300-400-5000"
	require.NoError(t, repo.Update(ctx, &a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	a.ID += 10
	assert.ErrorIs(t, repo.Update(ctx, &a), ErrNotFound)

	_, err = repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
