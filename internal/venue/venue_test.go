package venue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByArea(t *testing.T) {
	venues := []Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
		{ID: 4, Name: "Springfield Hall", City: "Springfield", State: "IL"},
		{ID: 5, Name: "Springfield Arena", City: "Springfield", State: "MA"},
	}

	areas := GroupByArea(venues)
	require.Len(t, areas, 4)

	assert.Equal(t, "San Francisco", areas[0].City)
	require.Len(t, areas[0].Venues, 2)
	assert.Equal(t, int64(1), areas[0].Venues[0].ID)
	assert.Equal(t, int64(3), areas[0].Venues[1].ID)

	assert.Equal(t, "New York", areas[1].City)
	assert.Equal(t, "IL", areas[2].State)
	assert.Equal(t, "MA", areas[3].State)

	assert.Empty(t, GroupByArea(nil))
}

func TestInputFrom(t *testing.T) {
	v := Venue{
		ID:           7,
		Name:         "The Musical Hop",
		City:         "San Francisco",
		State:        "CA",
		Address:      "1015 Folsom Street",
		Phone:        "123-123-1234",
		FacebookLink: "https://www.facebook.com/TheMusicalHop",
		Genres:       []string{"Jazz", "Reggae"},
	}
	assert.Equal(t, v, InputFrom(v).venue(7))
	assert.Equal(t, []string{}, Input{}.venue(0).Genres)
}
