package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionCookie(t *testing.T) {
	cookie := NewSessionCookie("token-value", 7*24*time.Hour, false)

	assert.Equal(t, "jwt", cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HTTPOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestExpiredSessionCookie(t *testing.T) {
	cookie := ExpiredSessionCookie(true)

	assert.Equal(t, "jwt", cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.HTTPOnly)
	assert.True(t, cookie.Secure)
}

func TestSessionCookieHTTPCookie(t *testing.T) {
	httpCookie := NewSessionCookie("token-value", time.Hour, true).HTTPCookie()

	assert.Equal(t, "jwt", httpCookie.Name)
	assert.Equal(t, "token-value", httpCookie.Value)
	assert.Equal(t, "/", httpCookie.Path)
	assert.True(t, httpCookie.HttpOnly)
	assert.True(t, httpCookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, httpCookie.SameSite)
}
