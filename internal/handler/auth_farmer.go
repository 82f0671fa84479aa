package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jithinvs/krishi-mitra/internal/config"
	"github.com/jithinvs/krishi-mitra/internal/model"
	"github.com/jithinvs/krishi-mitra/internal/repository"
	"github.com/jithinvs/krishi-mitra/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints of both roles.
// The two RoleSpecs carry independent cookie names and signing secrets; a
// farmer session can never be replayed against an officer route.
type AuthHandler struct {
	Cfg            config.Config
	Farmers        FarmerStore
	Officers       OfficerStore
	FarmerSession  utils.RoleSpec
	OfficerSession utils.RoleSpec
}

func NewAuthHandler(cfg config.Config, f FarmerStore, o OfficerStore) *AuthHandler {
	return &AuthHandler{
		Cfg:            cfg,
		Farmers:        f,
		Officers:       o,
		FarmerSession:  utils.RoleSpec{Role: model.RoleFarmer, CookieName: "jwt", Secret: cfg.JWTUserSecret},
		OfficerSession: utils.RoleSpec{Role: model.RoleOfficer, CookieName: "agriToken", Secret: cfg.JWTAgriSecret},
	}
}

// ----- DTOs -----

type farmerRegisterReq struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	Location        string `json:"location"`
	ConfirmPassword string `json:"confirm_password"`
}

type farmerLoginReq struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// RegisterFarmer creates a farmer account and signs it in immediately by
// setting the session cookie alongside the 201.
func (h *AuthHandler) RegisterFarmer(c echo.Context) error {
	var req farmerRegisterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Phone == "" || req.Password == "" || req.Location == "" || req.ConfirmPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required"})
	}
	if req.Password != req.ConfirmPassword {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Passwords do not match"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Farmers.Create(ctx, req.Name, req.Phone, req.Password, req.Location, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	farmer, err := h.Farmers.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	tok, err := utils.NewSessionToken(h.FarmerSession, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	c.SetCookie(utils.SessionCookie(h.FarmerSession, tok))

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"newUser": farmer,
	})
}

// LoginFarmer verifies phone + password and sets the session cookie. Unknown
// phone and wrong password return the identical body so account existence
// does not leak.
func (h *AuthHandler) LoginFarmer(c echo.Context) error {
	var req farmerLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if strings.TrimSpace(req.Phone) == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	farmer, err := h.Farmers.GetByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid Credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server Error"})
	}
	if !utils.VerifyPassword(farmer.PasswordHash, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid Credentials"})
	}

	tok, err := utils.NewSessionToken(h.FarmerSession, farmer.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server Error"})
	}
	c.SetCookie(utils.SessionCookie(h.FarmerSession, tok))

	return c.JSON(http.StatusOK, farmer)
}

// LogoutFarmer clears the farmer session cookie. There is no server-side
// revocation; the token itself stays valid until its natural expiry.
func (h *AuthHandler) LogoutFarmer(c echo.Context) error {
	c.SetCookie(utils.ClearSessionCookie(h.FarmerSession))
	return c.JSON(http.StatusOK, echo.Map{"message": "User logged out successfully"})
}

// FarmerProfile returns the authenticated farmer loaded by the session guard.
func (h *AuthHandler) FarmerProfile(c echo.Context) error {
	farmer, ok := c.Get("account").(model.Farmer)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}
	return c.JSON(http.StatusOK, farmer)
}
