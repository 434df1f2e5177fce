package artist

import (
	"fmt"

	"fyyur/internal/show"
	"fyyur/internal/store"
)

var ErrNotFound = fmt.Errorf("artist %w", store.ErrNotFound)

type Artist struct {
	ID           int64    `json:"id" db:"id"`
	Name         string   `json:"name" db:"name"`
	City         string   `json:"city" db:"city"`
	State        string   `json:"state" db:"state"`
	Phone        string   `json:"phone" db:"phone"`
	Genres       []string `json:"genres" db:"genres"`
	ImageLink    string   `json:"image_link" db:"image_link"`
	FacebookLink string   `json:"facebook_link" db:"facebook_link"`
}

// Detail is an artist with the shows they are booked for.
type Detail struct {
	Artist
	show.Schedule
}

type SearchResult struct {
	Count int      `json:"count"`
	Data  []Artist `json:"data"`
}

// Input is the create/edit artist form. Genres are always a list, whatever
// number of values the browser submits.
type Input struct {
	Name         string   `form:"name" validate:"required,max=120"`
	City         string   `form:"city" validate:"required,max=120"`
	State        string   `form:"state" validate:"required,state"`
	Phone        string   `form:"phone" validate:"omitempty,phone"`
	Genres       []string `form:"genres" validate:"min=1,dive,genre"`
	ImageLink    string   `form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink string   `form:"facebook_link" validate:"omitempty,url,max=120"`
}

func (in Input) artist(id int64) Artist {
	genres := in.Genres
	if genres == nil {
		genres = []string{}
	}
	return Artist{
		ID:           id,
		Name:         in.Name,
		City:         in.City,
		State:        in.State,
		Phone:        in.Phone,
		Genres:       genres,
		ImageLink:    in.ImageLink,
		FacebookLink: in.FacebookLink,
	}
}

func InputFrom(a Artist) Input {
	return Input{
		Name:         a.Name,
		City:         a.City,
		State:        a.State,
		Phone:        a.Phone,
		Genres:       a.Genres,
		ImageLink:    a.ImageLink,
		FacebookLink: a.FacebookLink,
	}
}
