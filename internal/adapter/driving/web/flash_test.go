package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flashCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookieName {
			return c
		}
	}
	return nil
}

func TestFlash_RoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	setFlash(rec, Flash{
		Message:    "article posted successfully",
		AlertClass: alertSuccess,
		Errors:     map[string]string{"name": "must not be blank"},
		Form:       &FormValues{Name: "alice", Title: "hi"},
	})

	cookie := flashCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Positive(t, cookie.MaxAge)

	// Next request carries the cookie; popFlash returns the payload once.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	next := httptest.NewRecorder()

	flash := popFlash(next, req)
	require.NotNil(t, flash)
	assert.Equal(t, "article posted successfully", flash.Message)
	assert.Equal(t, alertSuccess, flash.AlertClass)
	assert.Equal(t, "must not be blank", flash.Errors["name"])
	require.NotNil(t, flash.Form)
	assert.Equal(t, "alice", flash.Form.Name)

	// popFlash must clear the cookie on the response.
	cleared := flashCookie(t, next)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
}

func TestPopFlash_NoCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	assert.Nil(t, popFlash(rec, req))
	assert.Nil(t, flashCookie(t, rec), "nothing to clear")
}

func TestPopFlash_GarbageCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: "%%%not-base64%%%"})
	rec := httptest.NewRecorder()

	assert.Nil(t, popFlash(rec, req))

	// Still cleared so the bad cookie doesn't stick around.
	cleared := flashCookie(t, rec)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
}
