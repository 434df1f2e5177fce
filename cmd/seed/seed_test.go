package main

import (
	"context"
	"testing"
	"time"

	"fyyur/internal/artist"
	"fyyur/internal/show"
	"fyyur/internal/testutil"
	"fyyur/internal/venue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_InsertsPastAndUpcomingShows(t *testing.T) {
	conn := testutil.MemoryDB(t)
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)

	repos := repositories{
		venues:  venue.NewSQLiteRepo(conn),
		artists: artist.NewSQLiteRepo(conn),
		shows:   show.NewSQLiteRepo(conn),
	}
	sum, err := seed(ctx, repos, now)
	require.NoError(t, err)
	assert.Equal(t, summary{Venues: 3, Artists: 3, Shows: 5}, sum)

	venues := venue.NewService(repos.venues, show.NewService(repos.shows).WithClock(testutil.FixedClock(now)))
	areas, err := venues.Areas(ctx)
	require.NoError(t, err)
	assert.Len(t, areas, 2)

	d, err := venues.Detail(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Park Square Live Music & Coffee", d.Name)
	assert.Equal(t, 1, d.PastShowsCount)
	assert.Equal(t, 2, d.UpcomingShowsCount)
}
