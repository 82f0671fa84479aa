package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jithinvs/krishi-mitra/internal/model"
	"github.com/jithinvs/krishi-mitra/internal/repository"
	"github.com/jithinvs/krishi-mitra/internal/utils"
)

var testSpec = utils.RoleSpec{Role: model.RoleFarmer, CookieName: "jwt", Secret: "test-secret"}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"account_id": c.Get("account_id")})
}

func runGuard(t *testing.T, load AccountLoader, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := SessionAuth(testSpec, load)(okHandler)(c)
	require.NoError(t, err)
	return rec
}

func TestSessionAuthNoCookie(t *testing.T) {
	rec := runGuard(t, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no token provided")
}

func TestSessionAuthBadToken(t *testing.T) {
	rec := runGuard(t, nil, &http.Cookie{Name: "jwt", Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid Token")
}

func TestSessionAuthWrongRoleSecret(t *testing.T) {
	other := utils.RoleSpec{Role: model.RoleOfficer, CookieName: "jwt", Secret: "other-secret"}
	tok, err := utils.NewSessionToken(other, 9)
	require.NoError(t, err)

	rec := runGuard(t, nil, &http.Cookie{Name: "jwt", Value: tok.Token})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthAccountGone(t *testing.T) {
	tok, err := utils.NewSessionToken(testSpec, 9)
	require.NoError(t, err)

	load := func(ctx context.Context, id uint64) (interface{}, error) {
		return nil, repository.ErrNotFound
	}
	rec := runGuard(t, load, &http.Cookie{Name: "jwt", Value: tok.Token})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No account found")
}

func TestSessionAuthSuccessAttachesAccount(t *testing.T) {
	tok, err := utils.NewSessionToken(testSpec, 9)
	require.NoError(t, err)

	farmer := model.Farmer{ID: 9, Name: "Anu", Phone: "9999999999"}
	load := func(ctx context.Context, id uint64) (interface{}, error) {
		assert.Equal(t, uint64(9), id)
		return farmer, nil
	}
	rec := runGuard(t, load, &http.Cookie{Name: "jwt", Value: tok.Token})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"account_id":9`)
}
