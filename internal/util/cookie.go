package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookieName matches the cookie the web client was built around.
const SessionCookieName = "codedex_session_token"

// SessionCookieMaxAge is seven days in seconds, the session token TTL.
const SessionCookieMaxAge = 60 * 60 * 24 * 7

// SetSessionCookie writes the HTTP-only session cookie. secure should be true
// in release mode only.
func SetSessionCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, SessionCookieMaxAge, "/", "", secure, true)
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
