package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jithinvs/krishi-mitra/internal/config"
	"github.com/jithinvs/krishi-mitra/internal/utils"
)

func testAuthHandler() (*AuthHandler, *fakeFarmerStore, *fakeOfficerStore) {
	cfg := config.Config{
		BcryptCost:    bcrypt.MinCost,
		JWTUserSecret: "farmer-secret",
		JWTAgriSecret: "officer-secret",
	}
	farmers := &fakeFarmerStore{}
	officers := &fakeOfficerStore{}
	return NewAuthHandler(cfg, farmers, officers), farmers, officers
}

func cookieNamed(rec interface{ Result() *http.Response }, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

const anuRegister = `{"name":"Anu","phone":"9999999999","password":"secret1","location":"kerala","confirm_password":"secret1"}`

func TestRegisterFarmerSuccess(t *testing.T) {
	h, farmers, _ := testAuthHandler()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/user/register", anuRegister)
	require.NoError(t, h.RegisterFarmer(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "User registered successfully")
	assert.NotContains(t, rec.Body.String(), "secret1")
	require.Len(t, farmers.farmers, 1)

	// Registration signs in: the session cookie must verify against the
	// farmer spec and point at the new account.
	ck := cookieNamed(rec, "jwt")
	require.NotNil(t, ck)
	id, err := utils.ParseSessionToken(h.FarmerSession, ck.Value)
	require.NoError(t, err)
	assert.Equal(t, farmers.farmers[0].ID, id)
}

func TestRegisterFarmerMissingField(t *testing.T) {
	h, farmers, _ := testAuthHandler()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/user/register",
		`{"name":"Anu","password":"secret1","location":"kerala","confirm_password":"secret1"}`)
	require.NoError(t, h.RegisterFarmer(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "All fields are required")
	assert.Empty(t, farmers.farmers)
}

func TestRegisterFarmerPasswordMismatch(t *testing.T) {
	h, farmers, _ := testAuthHandler()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/user/register",
		`{"name":"Anu","phone":"9999999999","password":"secret1","location":"kerala","confirm_password":"secret2"}`)
	require.NoError(t, h.RegisterFarmer(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Passwords do not match")
	assert.Empty(t, farmers.farmers)
}

func TestRegisterFarmerDuplicatePhone(t *testing.T) {
	h, farmers, _ := testAuthHandler()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/user/register", anuRegister)
	require.NoError(t, h.RegisterFarmer(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newJSONContext(http.MethodPost, "/api/auth/user/register",
		`{"name":"Binu","phone":"9999999999","password":"other","location":"kochi","confirm_password":"other"}`)
	require.NoError(t, h.RegisterFarmer(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")
	assert.Len(t, farmers.farmers, 1)
}

func TestLoginFarmerSuccess(t *testing.T) {
	h, _, _ := testAuthHandler()
	c, rec := newJSONContext(http.MethodPost, "/api/auth/user/register", anuRegister)
	require.NoError(t, h.RegisterFarmer(c))

	c, rec = newJSONContext(http.MethodPost, "/api/auth/user/login",
		`{"phone":"9999999999","password":"secret1"}`)
	require.NoError(t, h.LoginFarmer(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, cookieNamed(rec, "jwt"))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Anu", got["name"])
	assert.NotContains(t, got, "password")
	assert.NotContains(t, got, "PasswordHash")
}

func TestLoginFarmerWrongPassword(t *testing.T) {
	h, _, _ := testAuthHandler()
	c, _ := newJSONContext(http.MethodPost, "/api/auth/user/register", anuRegister)
	require.NoError(t, h.RegisterFarmer(c))

	c, rec := newJSONContext(http.MethodPost, "/api/auth/user/login",
		`{"phone":"9999999999","password":"wrong"}`)
	require.NoError(t, h.LoginFarmer(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid Credentials")
	assert.Nil(t, cookieNamed(rec, "jwt"))
}

func TestLoginFarmerUnknownPhoneSameError(t *testing.T) {
	h, _, _ := testAuthHandler()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/user/login",
		`{"phone":"0000000000","password":"whatever"}`)
	require.NoError(t, h.LoginFarmer(c))

	// Identical body for unknown key and wrong password.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid Credentials")
}

func TestLogoutFarmerClearsCookie(t *testing.T) {
	h, _, _ := testAuthHandler()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/user/logout", "")
	require.NoError(t, h.LogoutFarmer(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	ck := cookieNamed(rec, "jwt")
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
	assert.Negative(t, ck.MaxAge)
}

func TestFarmerProfileReturnsAccount(t *testing.T) {
	h, farmers, _ := testAuthHandler()
	c, _ := newJSONContext(http.MethodPost, "/api/auth/user/register", anuRegister)
	require.NoError(t, h.RegisterFarmer(c))

	c, rec := newJSONContext(http.MethodGet, "/api/user/profile", "")
	c.Set("account", farmers.farmers[0])
	require.NoError(t, h.FarmerProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"phone":"9999999999"`)
	assert.NotContains(t, rec.Body.String(), "password")
}
