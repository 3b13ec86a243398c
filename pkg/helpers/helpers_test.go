package helpers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func signed(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-only-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestDecodeSessionToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signed(t, &TokenPayload{
		UserID:           42,
		Role:             RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
	})

	p, err := DecodeSessionToken(tok)
	if err != nil {
		t.Fatalf("DecodeSessionToken: %v", err)
	}
	if p.UserID != 42 || !p.IsAdmin() || p.HomePath() != "/admin" {
		t.Fatalf("unexpected payload %+v", p)
	}
	if p.Expired(time.Now()) {
		t.Fatal("token should not be expired yet")
	}
	if !p.Expired(exp.Add(time.Second)) {
		t.Fatal("token should be expired after exp")
	}
}

func TestDecodeSessionToken_RoleClaim(t *testing.T) {
	cases := []struct {
		name   string
		claims jwt.MapClaims
		role   string
		home   string
		known  bool
	}{
		{"role claim", jwt.MapClaims{"userId": 1, "role": "ADMIN"}, RoleAdmin, "/admin", true},
		{"roleName claim", jwt.MapClaims{"userId": 1, "roleName": "CUSTOMER"}, RoleCustomer, "/portal", true},
		{"role wins over roleName", jwt.MapClaims{"userId": 1, "role": "CUSTOMER", "roleName": "ADMIN"}, RoleCustomer, "/portal", true},
		{"lower case", jwt.MapClaims{"userId": 1, "role": "admin"}, RoleAdmin, "/admin", true},
		{"missing", jwt.MapClaims{"userId": 1}, "", "/login", false},
		{"unknown", jwt.MapClaims{"userId": 1, "role": "SUPPORT"}, "SUPPORT", "/login", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := DecodeSessionToken(signed(t, tc.claims))
			if err != nil {
				t.Fatalf("DecodeSessionToken: %v", err)
			}
			if p.Role != tc.role || p.HomePath() != tc.home || p.HasKnownRole() != tc.known {
				t.Fatalf("got role %q home %q known %v", p.Role, p.HomePath(), p.HasKnownRole())
			}
		})
	}
}

func TestDecodeSessionToken_IgnoresSignature(t *testing.T) {
	tok := signed(t, &TokenPayload{UserID: 7, Role: RoleCustomer})
	parts := strings.Split(tok, ".")
	tampered := parts[0] + "." + parts[1] + ".bm90LWEtc2lnbmF0dXJl"

	p, err := DecodeSessionToken(tampered)
	if err != nil {
		t.Fatalf("expected unverified decode to succeed, got %v", err)
	}
	if p.HomePath() != "/portal" {
		t.Fatalf("expected customer home, got %q", p.HomePath())
	}
}

func TestDecodeSessionToken_Malformed(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b"} {
		if _, err := DecodeSessionToken(tok); !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("%q: expected ErrMalformedToken, got %v", tok, err)
		}
	}
}

func TestHashToken(t *testing.T) {
	if HashToken("") != "" {
		t.Fatal("empty token should hash to empty scope")
	}
	a, b := HashToken("one"), HashToken("two")
	if a == b || len(a) != 32 {
		t.Fatalf("unexpected hashes %q %q", a, b)
	}
}

func TestCookieManager(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewCookie("", true, 0)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	m.SetSession(c, "tok")

	res := w.Result()
	cookies := res.Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	ck := cookies[0]
	if ck.Name != SessionCookie || ck.Value != "tok" || !ck.HttpOnly || !ck.Secure {
		t.Fatalf("unexpected cookie %+v", ck)
	}
	if ck.MaxAge != 7*24*60*60 {
		t.Fatalf("expected 7 day max age, got %d", ck.MaxAge)
	}
	if ck.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected SameSite=Lax, got %v", ck.SameSite)
	}
}

func TestSessionFrom(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if SessionFrom(c) != "" {
		t.Fatal("expected empty session without cookie")
	}
	c.Request.AddCookie(&http.Cookie{Name: SessionCookie, Value: "abc"})
	if SessionFrom(c) != "abc" {
		t.Fatal("expected cookie value")
	}
}
