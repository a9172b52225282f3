package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
)

// NewFormRequest creates a POST request carrying url-encoded form values, the
// way a browser submits the catalog's forms.
func NewFormRequest(path string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// WithCookie attaches a session cookie to the request.
func WithCookie(r *http.Request, name, value string) *http.Request {
	r.AddCookie(&http.Cookie{Name: name, Value: value})
	return r
}

// CookieValue extracts a Set-Cookie value from a recorded response; empty if
// the cookie was not set.
func CookieValue(w *httptest.ResponseRecorder, name string) string {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
