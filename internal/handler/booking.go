package handler

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/metrics"
	queue "github.com/iliyamo/hotel-booking/internal/queue"
	"github.com/iliyamo/hotel-booking/internal/reference"
	"github.com/iliyamo/hotel-booking/internal/repository"
	publisher "github.com/iliyamo/hotel-booking/internal/service"
)

// BookingHandler serves the authenticated booking flow: create, list own,
// cancel.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Rooms    *repository.RoomRepo
	Users    *repository.UserRepo
	Refs     *reference.Generator
}

func NewBookingHandler(b *repository.BookingRepo, r *repository.RoomRepo, u *repository.UserRepo, g *reference.Generator) *BookingHandler {
	return &BookingHandler{Bookings: b, Rooms: r, Users: u, Refs: g}
}

type createBookingReq struct {
	RoomID   uint64 `json:"room_id" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Guests   uint8  `json:"guests" validate:"required,min=1"`
}

// Create writes a booking for the authenticated guest.  The date range is
// half-open: the checkout day is free for the next guest.  Availability is
// re-checked against current bookings in the same transaction as the
// insert, so racing requests for the same room and dates cannot both win.
func (h *BookingHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id, check_in, check_out and guests are required"})
	}
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "INVALID_DATES"})
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "INVALID_DATES"})
	}
	if !checkIn.Before(checkOut) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "INVALID_DATES"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	room, err := h.Rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	b, err := h.Bookings.Create(ctx, h.Refs, uid, req.RoomID, checkIn, checkOut, req.Guests)
	if err != nil {
		switch err {
		case repository.ErrInvalidDateRange:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "INVALID_DATES"})
		case repository.ErrRoomNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		case repository.ErrCapacityExceeded:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "room does not sleep that many guests"})
		case repository.ErrRoomUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{"error": "room is not available for those dates"})
		case repository.ErrReferenceExhausted:
			return c.JSON(http.StatusConflict, echo.Map{"error": "could not assign a booking reference, please retry"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}
	metrics.IncBookingCreated(room.Slug)

	totalCents := uint32(b.Nights()) * room.PriceCents

	ref := ""
	if b.Reference != nil {
		ref = *b.Reference
	}
	email := ""
	if u, err := h.Users.GetByID(ctx, uid); err == nil {
		email = u.Email
	}
	ev := queue.BookingCreatedEvent{
		BookingID:  b.ID,
		Reference:  ref,
		UserID:     uid,
		UserEmail:  email,
		RoomID:     room.ID,
		RoomSlug:   room.Slug,
		RoomName:   room.Name,
		CheckIn:    b.CheckIn.UTC().Format(dateLayout),
		CheckOut:   b.CheckOut.UTC().Format(dateLayout),
		Guests:     b.Guests,
		TotalCents: totalCents,
		CreatedAt:  b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if err := publisher.PublishBookingCreated(ctx, ev); err != nil {
		// Confirmation mail and log line are best effort; the booking stands.
		log.Printf("booking: publish created event failed: %v", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"id":          b.ID,
		"reference":   b.Reference,
		"room_id":     room.ID,
		"room_slug":   room.Slug,
		"room_name":   room.Name,
		"check_in":    ev.CheckIn,
		"check_out":   ev.CheckOut,
		"guests":      b.Guests,
		"nights":      b.Nights(),
		"total_cents": totalCents,
		"created_at":  ev.CreatedAt,
	})
}

// ListMine returns the caller's bookings, newest first.
func (h *BookingHandler) ListMine(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Bookings.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Delete cancels one of the caller's bookings.  A booking that does not
// exist and a booking owned by someone else both return 404.
func (h *BookingHandler) Delete(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.DeleteByIDForUser(ctx, id, uid); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	metrics.IncBookingCancelled()
	return c.NoContent(http.StatusNoContent)
}
