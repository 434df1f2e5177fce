package artist

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"fyyur/internal/show"
	"fyyur/internal/store"
	"fyyur/internal/testutil"
	"fyyur/internal/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) List(ctx context.Context) ([]Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Artist), args.Error(1)
}

func (m *mockRepo) Search(ctx context.Context, term string) ([]Artist, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Artist), args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (Artist, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Artist), args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, a *Artist) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockRepo) Update(ctx context.Context, a *Artist) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

type mockSchedules struct {
	mock.Mock
}

func (m *mockSchedules) ForArtist(ctx context.Context, artistID int64) (show.Schedule, error) {
	args := m.Called(ctx, artistID)
	return args.Get(0).(show.Schedule), args.Error(1)
}

func newTestHandler(t *testing.T) (*HTTPHandler, *mockRepo, *mockSchedules) {
	repo := new(mockRepo)
	schedules := new(mockSchedules)
	views, err := web.NewRenderer()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.AssertExpectations(t)
		schedules.AssertExpectations(t)
	})
	return NewHTTPHandler(NewService(repo, schedules), views), repo, schedules
}

func artistForm() url.Values {
	return url.Values{
		"name":          {"Guns N Petals"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"phone":         {"326-123-5000"},
		"genres":        {"Rock n Roll"},
		"image_link":    {"https://images.unsplash.com/photo-1549213783-8284d0336c4f"},
		"facebook_link": {"https://www.facebook.com/GunsNPetals"},
	}
}

func TestHTTPHandler_List(t *testing.T) {
	handler, repo, _ := newTestHandler(t)
	repo.On("List", mock.Anything).Return([]Artist{{ID: 4, Name: "Guns N Petals"}, {ID: 5, Name: "Matt Quevedo"}}, nil).Once()

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest(http.MethodGet, "/artists", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/artists/5"`)
	assert.Contains(t, w.Body.String(), "Matt Quevedo")
}

func TestHTTPHandler_Search(t *testing.T) {
	handler, repo, _ := newTestHandler(t)
	repo.On("Search", mock.Anything, "band").Return([]Artist{{ID: 6, Name: "The Wild Sax Band", City: "San Francisco", State: "CA"}}, nil).Once()

	w := httptest.NewRecorder()
	handler.Search(w, testutil.NewFormRequest(http.MethodPost, "/artists/search", url.Values{"search_term": {"band"}}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `Number of search results for "band": 1`)
}

func TestHTTPHandler_Detail(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("past show", func(t *testing.T) {
		handler, repo, schedules := newTestHandler(t)
		repo.On("GetByID", mock.Anything, int64(4)).Return(Artist{ID: 4, Name: "Guns N Petals", Genres: []string{"Rock n Roll"}}, nil).Once()
		schedules.On("ForArtist", mock.Anything, int64(4)).Return(show.Split([]show.Show{
			{ID: 1, VenueID: 1, ArtistID: 4, StartTime: now.Add(-24 * time.Hour)},
		}, now), nil).Once()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/artists/4", nil)
		r.SetPathValue("id", "4")
		handler.Detail(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "0 Upcoming Shows")
		assert.Contains(t, w.Body.String(), "1 Past Show")
		assert.Contains(t, w.Body.String(), `href="/venues/1"`)
	})

	t.Run("not found", func(t *testing.T) {
		handler, repo, _ := newTestHandler(t)
		repo.On("GetByID", mock.Anything, int64(99)).Return(Artist{}, ErrNotFound).Once()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/artists/99", nil)
		r.SetPathValue("id", "99")
		handler.Detail(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("schedule failure", func(t *testing.T) {
		handler, repo, schedules := newTestHandler(t)
		repo.On("GetByID", mock.Anything, int64(4)).Return(Artist{ID: 4}, nil).Once()
		schedules.On("ForArtist", mock.Anything, int64(4)).Return(show.Schedule{}, fmt.Errorf("%w: timeout", store.ErrUnavailable)).Once()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/artists/4", nil)
		r.SetPathValue("id", "4")
		handler.Detail(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	t.Run("single genre is stored as a list", func(t *testing.T) {
		handler, repo, _ := newTestHandler(t)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(a *Artist) bool {
			return assert.ObjectsAreEqual([]string{"Rock n Roll"}, a.Genres) && a.Name == "Guns N Petals"
		})).Return(nil).Once()

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewFormRequest(http.MethodPost, "/artists/create", artistForm()))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.NotNil(t, testutil.FlashCookie(w))
	})

	t.Run("missing genres", func(t *testing.T) {
		handler, _, _ := newTestHandler(t)
		form := artistForm()
		form.Del("genres")

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewFormRequest(http.MethodPost, "/artists/create", form))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "genres must have at least 1 entries or characters")
	})

	t.Run("store unavailable", func(t *testing.T) {
		handler, repo, _ := newTestHandler(t)
		repo.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("%w: %w", store.ErrUnavailable, errors.New("conn refused"))).Once()

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewFormRequest(http.MethodPost, "/artists/create", artistForm()))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Artist Guns N Petals could not be listed.")
	})
}

func TestHTTPHandler_Edit(t *testing.T) {
	t.Run("form is prefilled", func(t *testing.T) {
		handler, repo, _ := newTestHandler(t)
		repo.On("GetByID", mock.Anything, int64(5)).Return(Artist{
			ID: 5, Name: "Matt Quevedo", City: "New York", State: "NY", Genres: []string{"Jazz"},
		}, nil).Once()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/artists/5/edit", nil)
		r.SetPathValue("id", "5")
		handler.EditForm(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `value="Matt Quevedo"`)
		assert.Contains(t, w.Body.String(), `action="/artists/5/edit"`)
	})

	t.Run("submit persists", func(t *testing.T) {
		handler, repo, _ := newTestHandler(t)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(a *Artist) bool { return a.ID == 5 })).Return(nil).Once()

		w := httptest.NewRecorder()
		r := testutil.NewFormRequest(http.MethodPost, "/artists/5/edit", artistForm())
		r.SetPathValue("id", "5")
		handler.Edit(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/artists/5", w.Header().Get("Location"))
	})

	t.Run("unknown artist", func(t *testing.T) {
		handler, repo, _ := newTestHandler(t)
		repo.On("Update", mock.Anything, mock.Anything).Return(ErrNotFound).Once()

		w := httptest.NewRecorder()
		r := testutil.NewFormRequest(http.MethodPost, "/artists/7/edit", artistForm())
		r.SetPathValue("id", "7")
		handler.Edit(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
