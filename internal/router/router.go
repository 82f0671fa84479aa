package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/jithinvs/krishi-mitra/internal/handler"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only the health check at the root path, which load
// balancers and uptime monitors use to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Health)
}

// RegisterAuth registers the register/login/logout endpoints of both roles
// under /api/auth. The limiter is the Redis token bucket damping credential
// stuffing; it wraps only this group so authenticated traffic is unaffected.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/api/auth", limiter)

	g.POST("/user/register", a.RegisterFarmer)
	g.POST("/user/login", a.LoginFarmer)
	g.POST("/user/logout", a.LogoutFarmer)

	g.POST("/agri/register", a.RegisterOfficer)
	g.POST("/agri/login", a.LoginOfficer)
	g.POST("/agri/logout", a.LogoutOfficer)
}

// RegisterFarmer registers the protected farmer endpoints under /api/user.
// The guard resolves the farmer session cookie once per request; the cache
// middleware serves repeated profile reads from Redis.
func RegisterFarmer(e *echo.Echo, a *handler.AuthHandler, ch *handler.ChatHandler, t *handler.TaskHandler, guard, cache echo.MiddlewareFunc) {
	g := e.Group("/api/user")
	g.Use(guard)

	g.GET("/profile", a.FarmerProfile, cache)
	g.POST("/chat", ch.PostMessage)
	g.GET("/getchats", ch.GetChats)
	g.GET("/tasks", t.ListForFarmer)
}

// RegisterOfficer registers the protected officer endpoints under /api/agri.
func RegisterOfficer(e *echo.Echo, a *handler.AuthHandler, t *handler.TaskHandler, guard, cache echo.MiddlewareFunc) {
	g := e.Group("/api/agri")
	g.Use(guard)

	g.GET("/profile", a.OfficerProfile, cache)
	g.POST("/tasks", t.Create)
	g.GET("/tasks", t.ListForOfficer)
	g.PATCH("/tasks/:id/status", t.UpdateStatus)
}
