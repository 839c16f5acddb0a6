package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/metrics"
	"github.com/iliyamo/hotel-booking/internal/repository"
)

// RoomHandler serves the public room catalog and availability search.
type RoomHandler struct {
	Rooms *repository.RoomRepo
}

func NewRoomHandler(r *repository.RoomRepo) *RoomHandler {
	return &RoomHandler{Rooms: r}
}

// ListRooms returns the full catalog ordered by nightly price.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Rooms.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetRoom returns one room by slug with features and gallery.
func (h *RoomHandler) GetRoom(c echo.Context) error {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slug required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	room, err := h.Rooms.GetBySlug(ctx, slug)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, room)
}

// Availability lists rooms free for the whole stay with enough capacity.
// check_in and check_out are calendar dates; checkout day itself is free,
// so a stay ending on a date does not block one starting that date.
func (h *RoomHandler) Availability(c echo.Context) error {
	checkIn, err := parseDate(c.QueryParam("check_in"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "INVALID_DATES"})
	}
	checkOut, err := parseDate(c.QueryParam("check_out"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "INVALID_DATES"})
	}
	if !checkIn.Before(checkOut) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "INVALID_DATES"})
	}

	guests := 1
	if raw := c.QueryParam("guests"); raw != "" {
		guests, err = strconv.Atoi(raw)
		if err != nil || guests < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "guests must be a positive number"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Rooms.ListAvailable(ctx, checkIn, checkOut, guests)
	if err != nil {
		if err == repository.ErrInvalidDateRange {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "INVALID_DATES"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	metrics.IncAvailabilitySearch()

	return c.JSON(http.StatusOK, echo.Map{
		"items":     items,
		"check_in":  checkIn.Format(dateLayout),
		"check_out": checkOut.Format(dateLayout),
		"guests":    guests,
	})
}
