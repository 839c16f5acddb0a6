package router // router defines how HTTP routes are registered for the API

import (
	"github.com/iliyamo/hotel-booking/internal/handler"    // admin handlers
	"github.com/iliyamo/hotel-booking/internal/middleware" // JWT + role middlewares
	"github.com/labstack/echo/v4"
)

// RegisterAdmin registers ADMIN-scoped catalog maintenance under /v1.
// All routes require a valid JWT and ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminRoomHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	// Create-or-replace a room, its feature list and gallery by slug.
	g.PUT("/rooms/:slug", a.Upsert)
}
