package main

import (
	"context"
	"fmt"
	"time"

	"fyyur/internal/artist"
	"fyyur/internal/show"
	"fyyur/internal/venue"
)

type repositories struct {
	venues  venue.Repository
	artists artist.Repository
	shows   show.Repository
}

type summary struct {
	Venues  int
	Artists int
	Shows   int
}

var sampleVenues = []venue.Venue{
	{
		Name:         "The Musical Hop",
		City:         "San Francisco",
		State:        "CA",
		Address:      "1015 Folsom Street",
		Phone:        "123-123-1234",
		ImageLink:    "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
		FacebookLink: "https://www.facebook.com/TheMusicalHop",
		Genres:       []string{"Jazz", "Reggae", "Classical", "Folk"},
	},
	{
		Name:         "The Dueling Pianos Bar",
		City:         "New York",
		State:        "NY",
		Address:      "335 Delancey Street",
		Phone:        "914-003-1132",
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=750",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		Genres:       []string{"Classical", "R&B", "Hip-Hop"},
	},
	{
		Name:         "Park Square Live Music & Coffee",
		City:         "San Francisco",
		State:        "CA",
		Address:      "34 Whiskey Moore Ave",
		Phone:        "415-000-1234",
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=747",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
	},
}

var sampleArtists = []artist.Artist{
	{
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		Genres:       []string{"Rock n Roll"},
		ImageLink:    "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
		FacebookLink: "https://www.facebook.com/GunsNPetals",
	},
	{
		Name:         "Matt Quevedo",
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		Genres:       []string{"Jazz"},
		ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
	},
	{
		Name:      "The Wild Sax Band",
		City:      "San Francisco",
		State:     "CA",
		Phone:     "432-325-5432",
		Genres:    []string{"Jazz", "Classical"},
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
	},
}

// sampleShows pairs venue and artist positions with an offset from now, so a
// fresh seed always has both past and upcoming shows.
var sampleShows = []struct {
	venue, artist int
	offset        time.Duration
}{
	{venue: 0, artist: 0, offset: -30 * 24 * time.Hour},
	{venue: 2, artist: 1, offset: -7 * 24 * time.Hour},
	{venue: 2, artist: 2, offset: 14 * 24 * time.Hour},
	{venue: 2, artist: 2, offset: 21 * 24 * time.Hour},
	{venue: 1, artist: 2, offset: 60 * 24 * time.Hour},
}

func seed(ctx context.Context, repos repositories, now time.Time) (summary, error) {
	var sum summary
	start := now.Truncate(time.Hour)

	venueIDs := make([]int64, len(sampleVenues))
	for i, v := range sampleVenues {
		if err := repos.venues.Create(ctx, &v); err != nil {
			return sum, fmt.Errorf("venue %q: %w", v.Name, err)
		}
		venueIDs[i] = v.ID
		sum.Venues++
	}

	artistIDs := make([]int64, len(sampleArtists))
	for i, a := range sampleArtists {
		if err := repos.artists.Create(ctx, &a); err != nil {
			return sum, fmt.Errorf("artist %q: %w", a.Name, err)
		}
		artistIDs[i] = a.ID
		sum.Artists++
	}

	for _, s := range sampleShows {
		sh := show.Show{
			VenueID:   venueIDs[s.venue],
			ArtistID:  artistIDs[s.artist],
			StartTime: start.Add(s.offset),
		}
		if err := repos.shows.Create(ctx, &sh); err != nil {
			return sum, fmt.Errorf("show at venue %d: %w", sh.VenueID, err)
		}
		sum.Shows++
	}
	return sum, nil
}
