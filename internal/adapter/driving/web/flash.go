package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookieName = "corkboard_flash"

// Flash is the one-shot payload carried across a single redirect hop: it is
// written to the redirect response as a cookie and deleted when the next
// request reads it.
type Flash struct {
	Message    string            `json:"message,omitempty"`
	AlertClass string            `json:"alert_class,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
	Form       *FormValues       `json:"form,omitempty"`
}

// FormValues echoes a rejected submission so the next view can re-render the
// form pre-filled. Field names match the HTML form.
type FormValues struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	Title      string `json:"title,omitempty"`
	Contents   string `json:"contents,omitempty"`
	ArticleKey string `json:"articleKey,omitempty"`
}

// Alert classes referenced by the stylesheet.
const (
	alertSuccess = "alert-success"
	alertError   = "alert-error"
)

// setFlash attaches the flash to the response. Marshal failures are silently
// dropped; a missing flash message is not worth failing the redirect over.
func setFlash(w http.ResponseWriter, flash Flash) {
	data, err := json.Marshal(flash)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(data),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads the flash from the request and clears the cookie, so the
// payload is visible for exactly one hop. Returns nil when no flash is set
// or the cookie does not decode.
func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	data, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var flash Flash
	if err := json.Unmarshal(data, &flash); err != nil {
		return nil
	}

	return &flash
}
