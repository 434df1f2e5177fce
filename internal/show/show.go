package show

import (
	"errors"
	"strings"
	"time"
)

// Show books one artist into one venue at a start time.
type Show struct {
	ID        int64     `json:"id" db:"id"`
	VenueID   int64     `json:"venue_id" db:"venue_id"`
	ArtistID  int64     `json:"artist_id" db:"artist_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
}

// Schedule is the upcoming/past split shown on venue and artist pages.
type Schedule struct {
	UpcomingShows      []Show `json:"upcoming_shows"`
	UpcomingShowsCount int    `json:"upcoming_shows_count"`
	PastShows          []Show `json:"past_shows"`
	PastShowsCount     int    `json:"past_shows_count"`
}

// Split partitions shows around now, keeping their order. A show starting
// exactly at now counts as upcoming.
func Split(shows []Show, now time.Time) Schedule {
	sched := Schedule{
		UpcomingShows: []Show{},
		PastShows:     []Show{},
	}
	for _, s := range shows {
		if s.StartTime.Before(now) {
			sched.PastShows = append(sched.PastShows, s)
		} else {
			sched.UpcomingShows = append(sched.UpcomingShows, s)
		}
	}
	sched.UpcomingShowsCount = len(sched.UpcomingShows)
	sched.PastShowsCount = len(sched.PastShows)
	return sched
}

// Input is the create-show form.
type Input struct {
	ArtistID  int64  `form:"artist_id" validate:"required,gt=0"`
	VenueID   int64  `form:"venue_id" validate:"required,gt=0"`
	StartTime string `form:"start_time" validate:"required"`
}

var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.RFC3339,
}

var errBadStartTime = errors.New("start time must look like 2019-06-15 20:00:00")

// ParseStartTime reads a form timestamp. Values without an offset are taken
// to be in loc.
func ParseStartTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errBadStartTime
}
