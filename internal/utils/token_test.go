package utils

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	farmerSpec  = RoleSpec{Role: "FARMER", CookieName: "jwt", Secret: "farmer-secret"}
	officerSpec = RoleSpec{Role: "OFFICER", CookieName: "agriToken", Secret: "officer-secret"}
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := NewSessionToken(farmerSpec, 42)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	id, err := ParseSessionToken(farmerSpec, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
}

func TestSessionTokenExpiryWindow(t *testing.T) {
	tok, err := NewSessionToken(farmerSpec, 1)
	require.NoError(t, err)

	want := time.Now().UTC().Add(SessionTTL)
	assert.WithinDuration(t, want, tok.Exp, time.Minute)
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	tok, err := NewSessionToken(farmerSpec, 42)
	require.NoError(t, err)

	_, err = ParseSessionToken(officerSpec, tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionTokenWrongRoleSameSecret(t *testing.T) {
	// Even with identical secrets the role claim must match the spec.
	a := RoleSpec{Role: "FARMER", CookieName: "jwt", Secret: "shared"}
	b := RoleSpec{Role: "OFFICER", CookieName: "agriToken", Secret: "shared"}

	tok, err := NewSessionToken(a, 42)
	require.NoError(t, err)

	_, err = ParseSessionToken(b, tok.Token)
	assert.ErrorIs(t, err, ErrWrongRole)
}

func TestParseSessionTokenGarbage(t *testing.T) {
	_, err := ParseSessionToken(farmerSpec, "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionCookieAttributes(t *testing.T) {
	tok, err := NewSessionToken(officerSpec, 7)
	require.NoError(t, err)

	ck := SessionCookie(officerSpec, tok)
	assert.Equal(t, "agriToken", ck.Name)
	assert.Equal(t, tok.Token, ck.Value)
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteNoneMode, ck.SameSite)
	assert.Equal(t, int(SessionTTL/time.Second), ck.MaxAge)
}

func TestClearSessionCookieExpiresSession(t *testing.T) {
	ck := ClearSessionCookie(officerSpec)
	// Same name as the login cookie, otherwise logout silently fails.
	assert.Equal(t, "agriToken", ck.Name)
	assert.Empty(t, ck.Value)
	assert.Negative(t, ck.MaxAge)
	assert.True(t, ck.Expires.Before(time.Now()))
}
