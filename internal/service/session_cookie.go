package service

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the identity token
const SessionCookieName = "jwt"

// SessionCookie is a plain descriptor of the jwt cookie. Handlers attach it
// to the outgoing response; nothing here touches a response writer.
type SessionCookie struct {
	Name     string
	Value    string
	Path     string
	MaxAge   int
	Secure   bool
	HTTPOnly bool
	SameSite http.SameSite
}

// NewSessionCookie builds the cookie descriptor for a freshly issued token
func NewSessionCookie(token string, ttl time.Duration, secure bool) SessionCookie {
	return SessionCookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Secure:   secure,
		HTTPOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

// ExpiredSessionCookie builds an immediately-expiring cookie with the same
// name, path, and flags, used to log out.
func ExpiredSessionCookie(secure bool) SessionCookie {
	cookie := NewSessionCookie("", 0, secure)
	cookie.MaxAge = -1
	return cookie
}

// HTTPCookie converts the descriptor into an http.Cookie
func (sc SessionCookie) HTTPCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sc.Name,
		Value:    sc.Value,
		Path:     sc.Path,
		MaxAge:   sc.MaxAge,
		Secure:   sc.Secure,
		HttpOnly: sc.HTTPOnly,
		SameSite: sc.SameSite,
	}
}
