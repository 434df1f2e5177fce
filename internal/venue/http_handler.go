package venue

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/httpx"
	"fyyur/internal/platform/logging"
	"fyyur/internal/web"

	"github.com/sirupsen/logrus"
)

const (
	listPage   = "pages/venues.html"
	searchPage = "pages/search_venues.html"
	detailPage = "pages/show_venue.html"
	newPage    = "forms/new_venue.html"
	editPage   = "forms/edit_venue.html"
)

type HTTPHandler struct {
	service *Service
	views   *web.Renderer
}

func NewHTTPHandler(service *Service, views *web.Renderer) *HTTPHandler {
	return &HTTPHandler{service: service, views: views}
}

// List handles GET /venues
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	areas, err := h.service.Areas(r.Context())
	if err != nil {
		h.views.ServerError(w, r, err)
		return
	}
	h.views.Render(w, r, http.StatusOK, listPage, web.Data{"Areas": areas})
}

// Search handles POST /venues/search
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

// Detail handles GET /venues/{id}
func (h *HTTPHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.ParseID(r)
	if !ok {
		h.views.NotFound(w, r)
		return
	}

	detail, err := h.service.Detail(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.views.NotFound(w, r)
			return
		}
		h.views.ServerError(w, r, err)
		return
	}
	h.views.Render(w, r, http.StatusOK, detailPage, web.Data{"Venue": detail})
}

// CreateForm handles GET /venues/create
func (h *HTTPHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, http.StatusOK, newPage, web.Data{
		"Form":   Input{},
		"Errors": map[string]string{},
	})
}

// Create handles POST /venues/create
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.readForm(w, r, newPage, web.Data{})
	if !ok {
		return
	}

	v, err := h.service.Create(r.Context(), in)
	var invalid httpx.ValidationErrors
	switch {
	case errors.As(err, &invalid):
		h.views.Render(w, r, http.StatusBadRequest, newPage, web.Data{
			"Form":   in,
			"Errors": invalid.ByField(),
		})
	case err != nil:
		h.views.ServerError(w, r, err, web.Danger(fmt.Sprintf("An error occurred. Venue %s could not be listed.", in.Name)))
	default:
		web.SetFlash(w, web.Success(fmt.Sprintf("Venue %s was successfully listed!", v.Name)))
		web.Redirect(w, r, "/")
	}
}

// EditForm handles GET /venues/{id}/edit
func (h *HTTPHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.ParseID(r)
	if !ok {
		h.views.NotFound(w, r)
		return
	}

	v, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.views.NotFound(w, r)
			return
		}
		h.views.ServerError(w, r, err)
		return
	}
	h.views.Render(w, r, http.StatusOK, editPage, web.Data{
		"ID":     id,
		"Form":   InputFrom(v),
		"Errors": map[string]string{},
	})
}

// Edit handles POST /venues/{id}/edit
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

	v, err := h.service.Update(r.Context(), id, in)
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
		h.views.ServerError(w, r, err, web.Danger(fmt.Sprintf("An error occurred. Venue %s could not be updated.", in.Name)))
	default:
		web.SetFlash(w, web.Success(fmt.Sprintf("Venue %s was successfully updated!", v.Name)))
		web.Redirect(w, r, fmt.Sprintf("/venues/%d", id))
	}
}

// Delete handles DELETE /venues/{id}. The response body is always empty;
// failures are only logged.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.ParseID(r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		logging.FromContext(r.Context()).WithError(err).WithFields(logrus.Fields{
			"venue_id": id,
		}).Warn("venue delete failed")
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
		Address:      httpx.FormValue(r, "address"),
		Phone:        httpx.FormValue(r, "phone"),
		ImageLink:    httpx.FormValue(r, "image_link"),
		FacebookLink: httpx.FormValue(r, "facebook_link"),
		Genres:       httpx.FormList(r, "genres"),
	}, true
}
