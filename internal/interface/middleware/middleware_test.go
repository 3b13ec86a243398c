package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/oksasatya/qos-portal/pkg/apiclient"
	"github.com/oksasatya/qos-portal/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

func token(t *testing.T, role string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &helpers.TokenPayload{UserID: 1, Role: role}).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func gated() *gin.Engine {
	r := gin.New()
	r.Use(SessionGate())
	ok := func(c *gin.Context) { c.String(http.StatusOK, "page") }
	for _, p := range []string{"/login", "/register", "/forgot-password", "/admin", "/admin/users", "/portal", "/dashboard", "/account/settings", "/adminx", "/"} {
		r.GET(p, ok)
	}
	return r
}

func TestSessionGate(t *testing.T) {
	r := gated()
	cases := []struct {
		name     string
		path     string
		cookie   string
		status   int
		location string
	}{
		{"private without cookie", "/admin/users", "", http.StatusFound, "/login?redirect=%2Fadmin%2Fusers"},
		{"portal without cookie", "/portal", "", http.StatusFound, "/login?redirect=%2Fportal"},
		{"account without cookie", "/account/settings", "", http.StatusFound, "/login?redirect=%2Faccount%2Fsettings"},
		{"private with cookie", "/admin/users", "x", http.StatusOK, ""},
		{"similar prefix is public", "/adminx", "", http.StatusOK, ""},
		{"login with cookie", "/login", "x", http.StatusFound, "/dashboard"},
		{"register with cookie", "/register", "x", http.StatusFound, "/dashboard"},
		{"login without cookie", "/login", "", http.StatusOK, ""},
		{"public page", "/", "", http.StatusOK, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: helpers.SessionCookie, Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if loc := w.Header().Get("Location"); loc != tc.location {
				t.Fatalf("expected location %q, got %q", tc.location, loc)
			}
		})
	}
}

func TestSessionContext_AttachesTokenAndPayload(t *testing.T) {
	tok := token(t, helpers.RoleCustomer)
	r := gin.New()
	r.Use(SessionContext())
	r.GET("/x", func(c *gin.Context) {
		p, ok := SessionFromCtx(c)
		c.JSON(http.StatusOK, gin.H{
			"ctx":     apiclient.SessionToken(c.Request.Context()) == tok,
			"decoded": ok && p.Role == helpers.RoleCustomer,
		})
	})
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookie, Value: tok})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]bool
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if !body["ctx"] || !body["decoded"] {
		t.Fatalf("unexpected %v", body)
	}
}

func TestRequireRole(t *testing.T) {
	r := gin.New()
	r.Use(SessionContext())
	r.GET("/admin-only", RequireSession(), RequireRole(helpers.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	cases := []struct {
		name   string
		cookie string
		status int
	}{
		{"no cookie", "", http.StatusUnauthorized},
		{"malformed", "garbage", http.StatusUnauthorized},
		{"customer", token(t, helpers.RoleCustomer), http.StatusForbidden},
		{"admin", token(t, helpers.RoleAdmin), http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: helpers.SessionCookie, Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRequestID)) })

	const incoming = "3f1c2a9e-7d4b-4f6a-9c1e-2b8d5e7f0a11"
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != incoming || w.Header().Get(HeaderRequestID) != incoming {
		t.Fatalf("expected incoming id kept, got %q", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "not a uuid; drop table")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() == "" || w.Body.String() == "not a uuid; drop table" {
		t.Fatalf("expected a fresh id, got %q", w.Body.String())
	}
}

func TestRealIP(t *testing.T) {
	r := gin.New()
	r.Use(RealIP("192.0.2.0/24", "2001:db8::1"))
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRealIP)) })

	cases := []struct {
		name   string
		remote string
		header map[string]string
		want   string
	}{
		{"cloudflare", "192.0.2.1:1234", map[string]string{"CF-Connecting-IP": "203.0.113.9", "X-Forwarded-For": "198.51.100.1"}, "203.0.113.9"},
		{"x-real-ip", "192.0.2.1:1234", map[string]string{"X-Real-IP": "198.51.100.7"}, "198.51.100.7"},
		{"xff left-most", "192.0.2.1:1234", map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.1"}, "198.51.100.1"},
		{"single trusted ipv6", "[2001:db8::1]:443", map[string]string{"X-Real-IP": "198.51.100.8"}, "198.51.100.8"},
		{"trusted without headers", "192.0.2.1:1234", nil, "192.0.2.1"},
		{"spoofed x-real-ip", "203.0.113.9:5555", map[string]string{"X-Real-IP": "10.0.0.1"}, "203.0.113.9"},
		{"spoofed cloudflare", "203.0.113.9:5555", map[string]string{"CF-Connecting-IP": "127.0.0.1"}, "203.0.113.9"},
		{"spoofed xff", "203.0.113.9:5555", map[string]string{"X-Forwarded-For": "192.168.1.1"}, "203.0.113.9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Body.String() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, w.Body.String())
			}
		})
	}
}

func TestRealIP_SpoofedPrivateHeaderIsNotExempt(t *testing.T) {
	r := gin.New()
	r.Use(RealIP())
	var exempt bool
	r.POST("/api/auth/login", func(c *gin.Context) {
		exempt = AllowPrivateIP()(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "203.0.113.9:5555"
	req.Header.Set("X-Real-IP", "10.0.0.1")
	r.ServeHTTP(httptest.NewRecorder(), req)
	if exempt {
		t.Fatal("a forged private X-Real-IP must not bypass the limiter")
	}
}

func TestRateLimit_NoClientIsNoop(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(nil, 1, 0, KeyByIP(), nil))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected pass-through, got %d", w.Code)
		}
	}
}

func TestAllowFuncs(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	c.Set(CtxRealIP, "203.0.113.5")

	if AllowPrivateIP()(c) {
		t.Fatal("public ip should not bypass")
	}
	if !AnyAllow(AllowPrivateIP(), AllowPaths("/healthz"))(c) {
		t.Fatal("health path should bypass")
	}
	c.Set(CtxRealIP, "10.1.2.3")
	if !AllowPrivateIP()(c) {
		t.Fatal("private ip should bypass")
	}
}

func TestPageRole(t *testing.T) {
	r := gin.New()
	r.Use(SessionContext())
	cookies := helpers.NewCookie("", false, time.Hour)
	r.GET("/admin", PageRole(helpers.RoleAdmin, cookies), func(c *gin.Context) { c.String(http.StatusOK, "admin") })
	r.GET("/portal", PageRole(helpers.RoleCustomer, cookies), func(c *gin.Context) { c.String(http.StatusOK, "portal") })

	cases := []struct {
		name     string
		path     string
		cookie   string
		status   int
		location string
		cleared  bool
	}{
		{"admin", "/admin", token(t, helpers.RoleAdmin), http.StatusOK, "", false},
		{"customer sent home", "/admin", token(t, helpers.RoleCustomer), http.StatusFound, "/portal", false},
		{"admin sent home", "/portal", token(t, helpers.RoleAdmin), http.StatusFound, "/admin", false},
		{"malformed", "/admin", "garbage", http.StatusFound, "/login?redirect=%2Fadmin", false},
		{"missing role on portal", "/portal", token(t, ""), http.StatusFound, "/login", true},
		{"missing role on admin", "/admin", token(t, ""), http.StatusFound, "/login", true},
		{"unknown role", "/portal", token(t, "SUPPORT"), http.StatusFound, "/login", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.AddCookie(&http.Cookie{Name: helpers.SessionCookie, Value: tc.cookie})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status || w.Header().Get("Location") != tc.location {
				t.Fatalf("expected %d %q, got %d %q", tc.status, tc.location, w.Code, w.Header().Get("Location"))
			}
			cleared := strings.Contains(w.Header().Get("Set-Cookie"), helpers.SessionCookie+"=;")
			if cleared != tc.cleared {
				t.Fatalf("cookie cleared = %v, want %v (Set-Cookie %q)", cleared, tc.cleared, w.Header().Get("Set-Cookie"))
			}
		})
	}
}
