package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"                             // Echo web framework
	"github.com/prometheus/client_golang/prometheus/promhttp" // Prometheus HTTP exposition

	"github.com/iliyamo/hotel-booking/internal/handler"    // request handlers
	"github.com/iliyamo/hotel-booking/internal/middleware" // JWT authentication and role enforcement
)

// RegisterRoutes registers operational routes that carry no business
// semantics: the health check used by load balancers and the Prometheus
// metrics exposition endpoint.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, p *handler.PasswordHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Rotates the refresh token.
	g.POST("/refresh", a.Refresh)
	// Issues a new access token without rotating the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout accepts either a Bearer token (revoke all sessions) or a
	// refresh_token body (revoke one session); no JWT middleware here.
	g.POST("/logout", a.Logout)

	// Forgot/reset password flow.  Both endpoints are anonymous; the
	// request endpoint always answers 200 regardless of account existence.
	g.POST("/request-reset", p.RequestReset)
	g.POST("/reset-password", p.ResetPassword)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("GUEST", "ADMIN"))
	auth.GET("/me", a.Me)
}
