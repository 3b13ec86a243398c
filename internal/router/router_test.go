package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	reg := NewRegistry(r)
	InitModules(reg)
	reg.RegisterAll()
	return r
}

func TestInitModules_Routes(t *testing.T) {
	r := newEngine()
	have := map[string]bool{}
	for _, ri := range r.Routes() {
		have[ri.Method+" "+ri.Path] = true
	}

	for _, want := range []string{
		"POST /api/auth/login",
		"POST /api/auth/register",
		"POST /api/auth/otp",
		"POST /api/auth/forgot-password",
		"POST /api/auth/logout",
		"GET /api/auth/google",
		"GET /logout",
		"GET /oauth-google-callback",
		"GET /api/admin/users",
		"POST /api/admin/users",
		"PUT /api/admin/service-plans/:id",
		"DELETE /api/admin/reviews/:id",
		"PUT /api/admin/subscriptions/:id/cancel",
		"POST /api/admin/qos-instances/:id/health-check",
		"GET /api/admin/payments/:id",
		"GET /api/service-plans",
		"GET /api/me",
		"PUT /api/me/password",
		"PUT /api/me/subscriptions/:id/cancel",
		"POST /api/me/reviews",
		"POST /api/payments",
		"POST /api/media/images",
		"GET /api/payment/return",
		"GET /api/payment/renew-return",
		"GET /login",
		"GET /dashboard",
		"GET /admin",
		"GET /admin/qos-instances",
		"GET /portal",
		"GET /portal/plans",
		"GET /account",
		"GET /payment/success",
		"GET /payment/failure",
		"GET /healthz",
	} {
		if !have[want] {
			t.Errorf("route %s not registered", want)
		}
	}
}

func TestInitModules_Gate(t *testing.T) {
	r := newEngine()

	cases := []struct {
		name     string
		path     string
		cookie   string
		code     int
		location string
	}{
		{"private page without session", "/admin/users", "", http.StatusFound, "/login?redirect=%2Fadmin%2Fusers"},
		{"login with session", "/login", "tok", http.StatusFound, "/dashboard"},
		{"admin api without session", "/api/admin/users", "", http.StatusUnauthorized, ""},
		{"me api without session", "/api/me", "", http.StatusUnauthorized, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "sessionToken", Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			if tc.location != "" && w.Header().Get("Location") != tc.location {
				t.Fatalf("location = %q, want %q", w.Header().Get("Location"), tc.location)
			}
		})
	}
}
