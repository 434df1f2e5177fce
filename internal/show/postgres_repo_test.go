package show

import (
	"context"
	"testing"
	"time"

	"fyyur/internal/store"
	"fyyur/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepo_CreateAndListByVenue(t *testing.T) {
	pool := testutil.PostgresPool(t)
	ctx := context.Background()
	repo := NewPostgresRepo(pool, 3*time.Second)

	var venueID, artistID int64
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO venues (name, city, state) VALUES ('Show Test Venue', 'New York', 'NY') RETURNING id`).Scan(&venueID))
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO artists (name, city, state) VALUES ('Show Test Artist', 'New York', 'NY') RETURNING id`).Scan(&artistID))

	s := Show{VenueID: venueID, ArtistID: artistID, StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Create(ctx, &s))
	assert.NotZero(t, s.ID)

	shows, err := repo.ListByVenue(ctx, venueID)
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.True(t, s.StartTime.Equal(shows[0].StartTime))

	bad := Show{VenueID: venueID, ArtistID: -1, StartTime: time.Now()}
	assert.ErrorIs(t, repo.Create(ctx, &bad), store.ErrConstraint)
}
