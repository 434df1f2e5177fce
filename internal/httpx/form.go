package httpx

import (
	"net/http"
	"strconv"
	"strings"
)

// ParseID reads the {id} path value as a positive integer.
func ParseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// FormValue returns a trimmed form value. ParseForm must have been called.
func FormValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostForm.Get(key))
}

// FormList returns every non-empty value submitted for key, in order.
func FormList(r *http.Request, key string) []string {
	var out []string
	for _, v := range r.PostForm[key] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// FormInt parses an integer form field; malformed input yields 0 so that the
// validator reports the field as missing.
func FormInt(r *http.Request, key string) int64 {
	n, err := strconv.ParseInt(FormValue(r, key), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
