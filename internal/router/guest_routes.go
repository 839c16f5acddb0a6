package router

import (
	"github.com/iliyamo/hotel-booking/internal/handler"
	"github.com/iliyamo/hotel-booking/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterGuest registers the authenticated booking flow under /v1.  All
// routes require a valid JWT; both GUEST and ADMIN roles may book.
// Guests can create bookings, list their own and cancel their own.
func RegisterGuest(e *echo.Echo, h *handler.BookingHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("GUEST", "ADMIN"),
	)
	g.POST("/bookings", h.Create)
	g.GET("/my-bookings", h.ListMine)
	// Cancellation is scoped to the caller inside the handler: a booking
	// that exists but belongs to someone else returns the same 404 as a
	// missing one.
	g.DELETE("/bookings/:id", h.Delete)
}
