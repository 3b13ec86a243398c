package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

var ErrMalformedToken = errors.New("malformed session token")

// TokenPayload is the claim set issued by the backend. Older tokens carry the
// role as roleName; DecodeSessionToken folds it into Role.
type TokenPayload struct {
	UserID   int64  `json:"userId"`
	Role     string `json:"role,omitempty"`
	RoleName string `json:"roleName,omitempty"`
	jwt.RegisteredClaims
}

// DecodeSessionToken reads the payload without checking the signature. The
// result is only good for routing decisions; the backend authorizes every call.
func DecodeSessionToken(token string) (*TokenPayload, error) {
	if token == "" {
		return nil, ErrMalformedToken
	}
	claims := &TokenPayload{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	if claims.Role == "" {
		claims.Role = claims.RoleName
	}
	claims.Role = strings.ToUpper(strings.TrimSpace(claims.Role))
	return claims, nil
}

// Expired reports whether exp is set and not after now.
func (p *TokenPayload) Expired(now time.Time) bool {
	if p.ExpiresAt == nil {
		return false
	}
	return !now.Before(p.ExpiresAt.Time)
}

func (p *TokenPayload) IsAdmin() bool { return p.Role == RoleAdmin }

// HasKnownRole is false for tokens the portal cannot route.
func (p *TokenPayload) HasKnownRole() bool {
	return p.Role == RoleAdmin || p.Role == RoleCustomer
}

// HomePath is where a signed-in user lands. Unknown roles go back to login.
func (p *TokenPayload) HomePath() string {
	switch p.Role {
	case RoleAdmin:
		return "/admin"
	case RoleCustomer:
		return "/portal"
	default:
		return "/login"
	}
}

// HashToken fingerprints a token for use in cache keys.
func HashToken(token string) string {
	if token == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:16])
}
