package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jithinvs/krishi-mitra/internal/repository"
	"github.com/jithinvs/krishi-mitra/internal/utils"
)

// AccountLoader resolves a token's embedded account id to the stored account
// for one role. It must return repository.ErrNotFound when the id no longer
// resolves, e.g. the account was deleted after the token was issued.
type AccountLoader func(ctx context.Context, id uint64) (interface{}, error)

// SessionAuth returns an Echo middleware that authenticates a request from
// the role's session cookie. On success the resolved account is stored in
// the context under "account", with "account_id" and "role" alongside, so
// downstream handlers never re-verify the token. The check runs once per
// request with no caching of decoded identity.
func SessionAuth(spec utils.RoleSpec, load AccountLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(spec.CookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorised - no token provided"})
			}
			id, err := utils.ParseSessionToken(spec, cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid Token"})
			}
			acct, err := load(c.Request().Context(), id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"message": "No account found"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
			}
			c.Set("account", acct)
			c.Set("account_id", id)
			c.Set("role", spec.Role)
			return next(c)
		}
	}
}
