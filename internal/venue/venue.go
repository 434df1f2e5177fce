package venue

import (
	"fmt"

	"fyyur/internal/show"
	"fyyur/internal/store"
)

// ErrNotFound is returned when no venue has the requested id.
var ErrNotFound = fmt.Errorf("venue %w", store.ErrNotFound)

type Venue struct {
	ID           int64    `json:"id" db:"id"`
	Name         string   `json:"name" db:"name"`
	City         string   `json:"city" db:"city"`
	State        string   `json:"state" db:"state"`
	Address      string   `json:"address" db:"address"`
	Phone        string   `json:"phone" db:"phone"`
	ImageLink    string   `json:"image_link" db:"image_link"`
	FacebookLink string   `json:"facebook_link" db:"facebook_link"`
	Genres       []string `json:"genres" db:"genres"`
}

// Area groups the venues of one city.
type Area struct {
	City   string  `json:"city"`
	State  string  `json:"state"`
	Venues []Venue `json:"venues"`
}

// GroupByArea buckets venues by (city, state). Areas and the venues inside
// them keep the order in which they first appear.
func GroupByArea(venues []Venue) []Area {
	type key struct{ city, state string }
	index := make(map[key]int)
	var areas []Area
	for _, v := range venues {
		k := key{v.City, v.State}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, v)
	}
	return areas
}

// Detail is a venue with its shows split into upcoming and past.
type Detail struct {
	Venue
	show.Schedule
}

type SearchResult struct {
	Count int     `json:"count"`
	Data  []Venue `json:"data"`
}

// Input is the create/edit venue form.
type Input struct {
	Name         string   `form:"name" validate:"required,max=120"`
	City         string   `form:"city" validate:"required,max=120"`
	State        string   `form:"state" validate:"required,state"`
	Address      string   `form:"address" validate:"required,max=120"`
	Phone        string   `form:"phone" validate:"omitempty,phone"`
	ImageLink    string   `form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	Genres       []string `form:"genres" validate:"min=1,dive,genre"`
}

func (in Input) venue(id int64) Venue {
	genres := in.Genres
	if genres == nil {
		genres = []string{}
	}
	return Venue{
		ID:           id,
		Name:         in.Name,
		City:         in.City,
		State:        in.State,
		Address:      in.Address,
		Phone:        in.Phone,
		ImageLink:    in.ImageLink,
		FacebookLink: in.FacebookLink,
		Genres:       genres,
	}
}

// InputFrom pre-fills the edit form.
func InputFrom(v Venue) Input {
	return Input{
		Name:         v.Name,
		City:         v.City,
		State:        v.State,
		Address:      v.Address,
		Phone:        v.Phone,
		ImageLink:    v.ImageLink,
		FacebookLink: v.FacebookLink,
		Genres:       v.Genres,
	}
}
