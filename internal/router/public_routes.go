package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/handler"
)

// RegisterPublic registers unauthenticated browse endpoints: the room
// catalog, availability search and newsletter signup.  These routes apply
// no JWT or role middleware; the optional response-cache middleware is a
// good fit for the two GET endpoints since catalog content changes rarely.
func RegisterPublic(e *echo.Echo, r *handler.RoomHandler, s *handler.SubscribeHandler, mw ...echo.MiddlewareFunc) {
	// Full catalog ordered by nightly price.
	e.GET("/v1/rooms", r.ListRooms, mw...)
	// Availability search must be registered before the slug route so
	// "availability" is not swallowed as a slug.
	e.GET("/v1/rooms/availability", r.Availability, mw...)
	// One room with features and gallery.
	e.GET("/v1/rooms/:slug", r.GetRoom, mw...)

	// Newsletter signup.  Public, but a signed-in caller submitting their
	// own address gets the subscription linked to their account.
	e.POST("/v1/subscribe", s.Subscribe)
}
