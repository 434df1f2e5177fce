package show

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"fyyur/internal/store"
	"fyyur/internal/testutil"
	"fyyur/internal/web"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*HTTPHandler, *MockRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	views, err := web.NewRenderer()
	require.NoError(t, err)
	return NewHTTPHandler(NewService(mockRepo), views), mockRepo
}

func TestHTTPHandler_List(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return([]Show{
			{ID: 1, VenueID: 3, ArtistID: 5, StartTime: time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
		}, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/shows", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `href="/venues/3"`)
		assert.Contains(t, w.Body.String(), `href="/artists/5"`)
	})

	t.Run("error", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, fmt.Errorf("%w: %w", store.ErrUnavailable, context.DeadlineExceeded))

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/shows", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	validForm := url.Values{
		"artist_id":  {"4"},
		"venue_id":   {"1"},
		"start_time": {"2019-05-21 21:30:00"},
	}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *Show) error {
			assert.Equal(t, int64(1), s.VenueID)
			assert.Equal(t, int64(4), s.ArtistID)
			assert.True(t, time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC).Equal(s.StartTime))
			s.ID = 10
			return nil
		})

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewFormRequest(http.MethodPost, "/shows/create", validForm))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.NotNil(t, testutil.FlashCookie(w))
	})

	t.Run("validation failure", func(t *testing.T) {
		form := url.Values{"artist_id": {"x"}, "venue_id": {"1"}, "start_time": {"soon"}}

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewFormRequest(http.MethodPost, "/shows/create", form))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "artist id is required")
	})

	t.Run("bad start time", func(t *testing.T) {
		form := url.Values{"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {"soon"}}

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewFormRequest(http.MethodPost, "/shows/create", form))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "start time must look like")
	})

	t.Run("unknown venue", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: fk", store.ErrConstraint))

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewFormRequest(http.MethodPost, "/shows/create", validForm))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Show could not be listed")
		assert.Nil(t, testutil.FlashCookie(w))
	})
}

func TestHTTPHandler_CreateForm(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.CreateForm(w, httptest.NewRequest(http.MethodGet, "/shows/create", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/shows/create"`)
}
