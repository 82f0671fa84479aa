package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jithinvs/krishi-mitra/internal/model"
	"github.com/jithinvs/krishi-mitra/internal/repository"
	"github.com/jithinvs/krishi-mitra/internal/utils"
)

type officerRegisterReq struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	Location        string `json:"location"`
	Email           string `json:"email"`
	LicenseNumber   string `json:"licenseNumber"`
	Aadhar          string `json:"aadhar"`
	ConfirmPassword string `json:"confirm_password"`
}

type officerLoginReq struct {
	LicenseNumber string `json:"licenseNumber"`
	Password      string `json:"password"`
}

// RegisterOfficer creates an agricultural officer account. All four natural
// keys (phone, email, license number, aadhar) must be unused within the
// officer collection; the password confirmation is enforced the same way as
// for farmers.
func (h *AuthHandler) RegisterOfficer(c echo.Context) error {
	var req officerRegisterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.Name == "" || strings.TrimSpace(req.Phone) == "" || req.Password == "" || req.Location == "" ||
		strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.LicenseNumber) == "" || strings.TrimSpace(req.Aadhar) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required"})
	}
	if req.Password != req.ConfirmPassword {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Passwords do not match"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Officers.Create(ctx, model.Officer{
		Name:          req.Name,
		Phone:         req.Phone,
		Location:      req.Location,
		Email:         req.Email,
		LicenseNumber: req.LicenseNumber,
		Aadhar:        req.Aadhar,
	}, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
	officer, err := h.Officers.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}

	tok, err := utils.NewSessionToken(h.OfficerSession, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
	c.SetCookie(utils.SessionCookie(h.OfficerSession, tok))

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"newAgri": officer,
	})
}

// LoginOfficer verifies license number + password and sets the officer
// session cookie.
func (h *AuthHandler) LoginOfficer(c echo.Context) error {
	var req officerLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if strings.TrimSpace(req.LicenseNumber) == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	officer, err := h.Officers.GetByLicense(ctx, req.LicenseNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid Credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
	if !utils.VerifyPassword(officer.PasswordHash, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid Credentials"})
	}

	tok, err := utils.NewSessionToken(h.OfficerSession, officer.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
	c.SetCookie(utils.SessionCookie(h.OfficerSession, tok))

	return c.JSON(http.StatusOK, echo.Map{"message": "Login successful", "agri": officer})
}

// LogoutOfficer clears the officer session cookie. The same cookie name is
// used at login and logout so the session actually disappears from the
// browser.
func (h *AuthHandler) LogoutOfficer(c echo.Context) error {
	c.SetCookie(utils.ClearSessionCookie(h.OfficerSession))
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

// OfficerProfile returns the authenticated officer loaded by the session guard.
func (h *AuthHandler) OfficerProfile(c echo.Context) error {
	officer, ok := c.Get("account").(model.Officer)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}
	return c.JSON(http.StatusOK, echo.Map{"agri": officer})
}
