package artist

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/httpx"
	"fyyur/internal/web"
)

const (
	listPage   = "pages/artists.html"
	searchPage = "pages/search_artists.html"
	detailPage = "pages/show_artist.html"
	newPage    = "forms/new_artist.html"
	editPage   = "forms/edit_artist.html"
)

type HTTPHandler struct {
	service *Service
	views   *web.Renderer
}

func NewHTTPHandler(service *Service, views *web.Renderer) *HTTPHandler {
	return &HTTPHandler{service: service, views: views}
}

// List handles GET /artists
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	artists, err := h.service.List(r.Context())
	if err != nil {
		h.views.ServerError(w, r, err)
		return
	}
	h.views.Render(w, r, http.StatusOK, listPage, web.Data{"Artists": artists})
}

// Search handles POST /artists/search
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.views.Render(w, r, http.StatusBadRequest, searchPage, web.Data{"Results": SearchResult{}, "SearchTerm": ""})
		return
	}
	// Whitespace is part of the term, as in any substring search.
	term := r.PostForm.Get("search_term")

	results, err := h.service.Search(r.Context(), term)
	if err != nil {
		h.views.ServerError(w, r, err)
		return
	}
	h.views.Render(w, r, http.StatusOK, searchPage, web.Data{
		"Results":    results,
		"SearchTerm": term,
	})
}

// Detail handles GET /artists/{id}
func (h *HTTPHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.ParseID(r)
	if !ok {
		h.views.NotFound(w, r)
		return
	}

	detail, err := h.service.Detail(r.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		h.views.NotFound(w, r)
	case err != nil:
		h.views.ServerError(w, r, err)
	default:
		h.views.Render(w, r, http.StatusOK, detailPage, web.Data{"Artist": detail})
	}
}

// CreateForm handles GET /artists/create
func (h *HTTPHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, http.StatusOK, newPage, web.Data{
		"Form":   Input{},
		"Errors": map[string]string{},
	})
}

// Create handles POST /artists/create
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.readForm(w, r, newPage, web.Data{})
	if !ok {
		return
	}

	a, err := h.service.Create(r.Context(), in)
	var invalid httpx.ValidationErrors
	switch {
	case errors.As(err, &invalid):
		h.views.Render(w, r, http.StatusBadRequest, newPage, web.Data{
			"Form":   in,
			"Errors": invalid.ByField(),
		})
	case err != nil:
		h.views.ServerError(w, r, err, web.Danger(fmt.Sprintf("An error occurred. Artist %s could not be listed.", in.Name)))
	default:
		web.SetFlash(w, web.Success(fmt.Sprintf("Artist %s was successfully listed!", a.Name)))
		web.Redirect(w, r, "/")
	}
}

// EditForm handles GET /artists/{id}/edit
func (h *HTTPHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.ParseID(r)
	if !ok {
		h.views.NotFound(w, r)
		return
	}

	a, err := h.service.Get(r.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		h.views.NotFound(w, r)
	case err != nil:
		h.views.ServerError(w, r, err)
	default:
		h.views.Render(w, r, http.StatusOK, editPage, web.Data{
			"ID":     id,
			"Form":   InputFrom(a),
			"Errors": map[string]string{},
		})
	}
}

// Edit handles POST /artists/{id}/edit
func (h *HTTPHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.ParseID(r)
	if !ok {
		h.views.NotFound(w, r)
		return
	}
	in, ok := h.readForm(w, r, editPage, web.Data{"ID": id})
	if !ok {
		return
	}

	a, err := h.service.Update(r.Context(), id, in)
	var invalid httpx.ValidationErrors
	switch {
	case errors.As(err, &invalid):
		h.views.Render(w, r, http.StatusBadRequest, editPage, web.Data{
			"ID":     id,
			"Form":   in,
			"Errors": invalid.ByField(),
		})
	case errors.Is(err, ErrNotFound):
		h.views.NotFound(w, r)
	case err != nil:
		h.views.ServerError(w, r, err, web.Danger(fmt.Sprintf("An error occurred. Artist %s could not be updated.", in.Name)))
	default:
		web.SetFlash(w, web.Success(fmt.Sprintf("Artist %s was successfully updated!", a.Name)))
		web.Redirect(w, r, fmt.Sprintf("/artists/%d", id))
	}
}

func (h *HTTPHandler) readForm(w http.ResponseWriter, r *http.Request, page string, data web.Data) (Input, bool) {
	if err := r.ParseForm(); err != nil {
		data["Form"] = Input{}
		data["Errors"] = map[string]string{}
		data["Flashes"] = []web.Message{web.Danger("The form could not be read.")}
		h.views.Render(w, r, http.StatusBadRequest, page, data)
		return Input{}, false
	}
	return Input{
		Name:         httpx.FormValue(r, "name"),
		City:         httpx.FormValue(r, "city"),
		State:        httpx.FormValue(r, "state"),
		Phone:        httpx.FormValue(r, "phone"),
		Genres:       httpx.FormList(r, "genres"),
		ImageLink:    httpx.FormValue(r, "image_link"),
		FacebookLink: httpx.FormValue(r, "facebook_link"),
	}, true
}
