package utils // package utils provides helpers for session tokens and hashing

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionTTL is the fixed validity window of a session token. There is no
// server-side revocation: logout only clears the cookie, so a token stays
// verifiable until this window elapses.
const SessionTTL = 15 * 24 * time.Hour

// RoleSpec describes one signing domain. Farmer and officer sessions use
// different cookie names (so both can coexist in one browser) and different
// secrets (so a token from one role can never verify as the other).
type RoleSpec struct {
	Role       string // role claim embedded in the token (model.RoleFarmer / RoleOfficer)
	CookieName string // cookie carrying the token for this role
	Secret     string // HS256 signing secret for this role
}

// SessionToken is a signed JWT plus its expiry.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

var (
	// ErrInvalidToken covers a bad signature, a malformed token or expiry.
	ErrInvalidToken = errors.New("invalid token")
	// ErrWrongRole means the token verified but was minted for another role.
	ErrWrongRole = errors.New("token issued for another role")
)

// NewSessionToken builds and signs an HS256 JWT for an account. The claims
// are the account id (sub), the role, expiration (exp) and issued-at (iat).
func NewSessionToken(spec RoleSpec, accountID uint64) (SessionToken, error) {
	now := time.Now().UTC()
	exp := now.Add(SessionTTL)
	claims := jwt.MapClaims{
		"sub":  accountID,
		"role": spec.Role,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(spec.Secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken verifies raw against the spec's secret and returns the
// embedded account id. Signature, expiry, signing-method and role mismatches
// all fail.
func ParseSessionToken(spec RoleSpec, raw string) (uint64, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(spec.Secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	if role, _ := claims["role"].(string); role != spec.Role {
		return 0, ErrWrongRole
	}
	// Numeric JSON claims decode as float64.
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, ErrInvalidToken
	}
	return uint64(sub), nil
}

// SessionCookie wraps a session token in the http-only cookie the browser
// clients expect: SameSite=None with Secure forced on, 15-day max age.
func SessionCookie(spec RoleSpec, t SessionToken) *http.Cookie {
	return &http.Cookie{
		Name:     spec.CookieName,
		Value:    t.Token,
		Path:     "/",
		Expires:  t.Exp,
		MaxAge:   int(SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// ClearSessionCookie returns an expired cookie that removes the session for
// the given role on the client.
func ClearSessionCookie(spec RoleSpec) *http.Cookie {
	return &http.Cookie{
		Name:     spec.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
