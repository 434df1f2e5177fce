package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookie = "fyyur_flash"

// Message is a one-shot notification shown on the next rendered page.
type Message struct {
	Level string `json:"level"` // success, danger, info
	Text  string `json:"text"`
}

func Success(text string) Message { return Message{Level: "success", Text: text} }
func Danger(text string) Message  { return Message{Level: "danger", Text: text} }

// SetFlash stores messages for the next request, typically before a redirect.
func SetFlash(w http.ResponseWriter, msgs ...Message) {
	if len(msgs) == 0 {
		return
	}
	b, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.URLEncoding.EncodeToString(b),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending messages and expires the cookie. A cookie that
// cannot be decoded is discarded.
func popFlash(w http.ResponseWriter, r *http.Request) []Message {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	decoded, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var msgs []Message
	if err := json.Unmarshal(decoded, &msgs); err != nil {
		return nil
	}
	return msgs
}
