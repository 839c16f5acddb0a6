package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/repository"
)

// AdminRoomHandler serves catalog maintenance for staff accounts.
type AdminRoomHandler struct {
	Rooms *repository.RoomRepo
}

func NewAdminRoomHandler(r *repository.RoomRepo) *AdminRoomHandler {
	return &AdminRoomHandler{Rooms: r}
}

type upsertRoomReq struct {
	Name        string   `json:"name" validate:"required"`
	PriceCents  uint32   `json:"price_cents" validate:"required,min=1"`
	Capacity    uint8    `json:"capacity" validate:"required,min=1"`
	CoverImage  string   `json:"cover_image"`
	Blurb       *string  `json:"blurb"`
	Description *string  `json:"description"`
	Features    []string `json:"features"`
	Gallery     []string `json:"gallery"`
}

// Upsert creates or replaces the room identified by the slug in the path,
// including its feature list and gallery.
func (h *AdminRoomHandler) Upsert(c echo.Context) error {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slug required"})
	}

	var req upsertRoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, price_cents and capacity are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := h.Rooms.Upsert(ctx, repository.RoomUpsert{
		Slug:        slug,
		Name:        req.Name,
		PriceCents:  req.PriceCents,
		Capacity:    req.Capacity,
		CoverImage:  req.CoverImage,
		Blurb:       req.Blurb,
		Description: req.Description,
		Features:    req.Features,
		Gallery:     req.Gallery,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upsert failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "slug": slug})
}
