package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/qos-portal/pkg/apiclient"
	"github.com/oksasatya/qos-portal/pkg/helpers"
	"github.com/oksasatya/qos-portal/pkg/response"
)

const (
	CtxSessionToken = "session_token"
	CtxSession      = "session"
)

var (
	PrivatePrefixes = []string{"/admin", "/portal", "/dashboard", "/account"}
	AuthOnlyPaths   = []string{"/login", "/register", "/forgot-password"}
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// SessionContext exposes the session cookie to the rest of the chain: the raw
// token in the gin context, the decoded payload when it parses, and a
// request-scoped token slot that backend calls read their bearer from.
func SessionContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := helpers.SessionFrom(c)
		c.Request = c.Request.WithContext(apiclient.WithSession(c.Request.Context(), token))
		if token != "" {
			c.Set(CtxSessionToken, token)
			if p, err := helpers.DecodeSessionToken(token); err == nil {
				c.Set(CtxSession, p)
			}
		}
		c.Next()
	}
}

// SessionGate redirects page requests on cookie presence alone. It does no
// verification; the backend rejects a bad token on the first call.
func SessionGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		hasSession := helpers.SessionFrom(c) != ""

		switch {
		case !hasSession && matchesPrefix(path, PrivatePrefixes):
			c.Redirect(http.StatusFound, LoginPath+"?redirect="+url.QueryEscape(path))
			c.Abort()
		case hasSession && matchesExact(path, AuthOnlyPaths):
			c.Redirect(http.StatusFound, DashboardPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}

// RequireSession rejects JSON requests without a session cookie.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if helpers.SessionFrom(c) == "" {
			response.Abort(c, http.StatusUnauthorized, "unauthorized", nil)
			return
		}
		c.Next()
	}
}

// RequireRole keeps the wrong role away from a route group. It trusts the
// unverified token, so it only shapes navigation; the backend still authorizes.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := SessionFromCtx(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "unauthorized", nil)
			return
		}
		if p.Role != role {
			response.Abort(c, http.StatusForbidden, "forbidden", nil)
			return
		}
		c.Next()
	}
}

// SessionFromCtx returns the payload decoded by SessionContext.
func SessionFromCtx(c *gin.Context) (*helpers.TokenPayload, bool) {
	v, ok := c.Get(CtxSession)
	if !ok {
		return nil, false
	}
	p, ok := v.(*helpers.TokenPayload)
	return p, ok && p != nil
}

func matchesPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func matchesExact(path string, paths []string) bool {
	path = strings.TrimSuffix(path, "/")
	for _, p := range paths {
		if path == p {
			return true
		}
	}
	return false
}

// PageRole is RequireRole for pages: the wrong role is sent to its own home,
// an undecodable token to the login page. A token whose role the portal does
// not know has no home, so its cookie is dropped on the way to login.
func PageRole(role string, cookies *helpers.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := SessionFromCtx(c)
		if !ok {
			c.Redirect(http.StatusFound, LoginPath+"?redirect="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}
		if !p.HasKnownRole() {
			if cookies != nil {
				cookies.Clear(c)
			}
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		if p.Role != role {
			c.Redirect(http.StatusFound, p.HomePath())
			c.Abort()
			return
		}
		c.Next()
	}
}
