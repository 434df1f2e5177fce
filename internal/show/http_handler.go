package show

import (
	"errors"
	"net/http"

	"fyyur/internal/httpx"
	"fyyur/internal/web"
)

const (
	listPage = "pages/shows.html"
	formPage = "forms/new_show.html"
)

type HTTPHandler struct {
	service *Service
	views   *web.Renderer
}

func NewHTTPHandler(service *Service, views *web.Renderer) *HTTPHandler {
	return &HTTPHandler{service: service, views: views}
}

// List handles GET /shows
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	shows, err := h.service.List(r.Context())
	if err != nil {
		h.views.ServerError(w, r, err)
		return
	}
	h.views.Render(w, r, http.StatusOK, listPage, web.Data{"Shows": shows})
}

// CreateForm handles GET /shows/create
func (h *HTTPHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, http.StatusOK, formPage, web.Data{
		"Form":   Input{},
		"Errors": map[string]string{},
	})
}

// Create handles POST /shows/create
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.views.Render(w, r, http.StatusBadRequest, formPage, web.Data{
			"Form":    Input{},
			"Errors":  map[string]string{},
			"Flashes": []web.Message{web.Danger("The form could not be read.")},
		})
		return
	}
	in := Input{
		ArtistID:  httpx.FormInt(r, "artist_id"),
		VenueID:   httpx.FormInt(r, "venue_id"),
		StartTime: httpx.FormValue(r, "start_time"),
	}

	_, err := h.service.Create(r.Context(), in)
	var invalid httpx.ValidationErrors
	switch {
	case errors.As(err, &invalid):
		h.views.Render(w, r, http.StatusBadRequest, formPage, web.Data{
			"Form":   in,
			"Errors": invalid.ByField(),
		})
	case err != nil:
		h.views.ServerError(w, r, err, web.Danger("An error occurred. Show could not be listed."))
	default:
		web.SetFlash(w, web.Success("Show was successfully listed!"))
		web.Redirect(w, r, "/")
	}
}
