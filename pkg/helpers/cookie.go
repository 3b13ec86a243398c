package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the backend session token between the browser and the portal.
const SessionCookie = "sessionToken"

type Manager struct {
	Domain string
	Secure bool
	MaxAge time.Duration
}

func NewCookie(domain string, secure bool, maxAge time.Duration) *Manager {
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}
	return &Manager{Domain: domain, Secure: secure, MaxAge: maxAge}
}

// SetSession writes the httpOnly, SameSite=Lax session cookie.
func (m *Manager) SetSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(m.MaxAge.Seconds()), "/", m.Domain, m.Secure, true)
}

func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", m.Domain, m.Secure, true)
}

// SessionFrom returns the session cookie value, or "" when absent.
func SessionFrom(c *gin.Context) string {
	v, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return v
}
