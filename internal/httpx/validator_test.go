package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testForm struct {
	Name         string   `form:"name" validate:"required,max=120"`
	State        string   `form:"state" validate:"required,state"`
	Phone        string   `form:"phone" validate:"omitempty,phone"`
	FacebookLink string   `form:"facebook_link" validate:"omitempty,url"`
	Genres       []string `form:"genres" validate:"min=1,dive,genre"`
}

func TestValidateStruct_ValidInput(t *testing.T) {
	errs := ValidateStruct(testForm{
		Name:         "The Musical Hop",
		State:        "CA",
		Phone:        "123-123-1234",
		FacebookLink: "https://www.facebook.com/TheMusicalHop",
		Genres:       []string{"Jazz", "Reggae"},
	})
	assert.Empty(t, errs)
}

func TestValidateStruct_FieldErrors(t *testing.T) {
	errs := ValidateStruct(testForm{
		State:        "XX",
		Phone:        "call me",
		FacebookLink: "not a url",
		Genres:       []string{"Jazz", "Polka"},
	})
	require.NotEmpty(t, errs)

	byField := errs.ByField()
	assert.Equal(t, "name is required", byField["name"])
	assert.Equal(t, "state must be a US state code", byField["state"])
	assert.Equal(t, "phone must be a valid phone number", byField["phone"])
	assert.Equal(t, "facebook link must be a valid URL", byField["facebook_link"])
	assert.Equal(t, "genres contains an unknown genre", byField["genres"])
	assert.Contains(t, errs.Error(), "name is required")
}

func TestValidateStruct_GenresRequired(t *testing.T) {
	errs := ValidateStruct(testForm{Name: "x", State: "NY"})
	assert.Contains(t, errs.ByField(), "genres")
}

func TestFormHelpers(t *testing.T) {
	form := url.Values{}
	form.Add("name", "  Dueling Pianos Bar ")
	form.Add("genres", "Jazz")
	form.Add("genres", " ")
	form.Add("genres", "Blues")
	form.Add("venue_id", "12")
	form.Add("artist_id", "abc")

	r := httptest.NewRequest(http.MethodPost, "/venues/create", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, r.ParseForm())

	assert.Equal(t, "Dueling Pianos Bar", FormValue(r, "name"))
	assert.Equal(t, []string{"Jazz", "Blues"}, FormList(r, "genres"))
	assert.Equal(t, int64(12), FormInt(r, "venue_id"))
	assert.Equal(t, int64(0), FormInt(r, "artist_id"))
}

func TestParseID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/venues/5", nil)
	r.SetPathValue("id", "5")
	id, ok := ParseID(r)
	assert.True(t, ok)
	assert.Equal(t, int64(5), id)

	r.SetPathValue("id", "five")
	_, ok = ParseID(r)
	assert.False(t, ok)

	r.SetPathValue("id", "-1")
	_, ok = ParseID(r)
	assert.False(t, ok)
}
