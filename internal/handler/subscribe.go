package handler

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/config"
	"github.com/iliyamo/hotel-booking/internal/mailer"
	"github.com/iliyamo/hotel-booking/internal/repository"
)

// SubscribeHandler serves the newsletter signup form.  The route is
// public; a signed-in caller who submits their own address gets the
// subscription linked to their account.
type SubscribeHandler struct {
	Cfg         config.Config
	Users       *repository.UserRepo
	Subscribers *repository.SubscriberRepo
	Mail        mailer.Sender
}

func NewSubscribeHandler(cfg config.Config, u *repository.UserRepo, s *repository.SubscriberRepo, m mailer.Sender) *SubscribeHandler {
	return &SubscribeHandler{Cfg: cfg, Users: u, Subscribers: s, Mail: m}
}

type subscribeReq struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe adds an email to the newsletter list.  Duplicate signups are
// not an error: an existing row is reported back as deduped, and gets the
// user link attached when a matching session is present.
func (h *SubscribeHandler) Subscribe(c echo.Context) error {
	var req subscribeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "a valid email is required"})
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// The route runs without auth middleware, so look for an optional
	// Bearer token by hand.  The link is only made when the session's
	// account email matches the submitted address.
	var linkUserID *uint64
	if uid, ok := h.bearerUserID(c); ok {
		if u, err := h.Users.GetByID(ctx, uid); err == nil && strings.EqualFold(u.Email, email) {
			linkUserID = &uid
		}
	}

	if _, err := h.Subscribers.GetByEmail(ctx, email); err == nil {
		if linkUserID != nil {
			if err := h.Subscribers.LinkUser(ctx, email, *linkUserID); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "subscribe failed"})
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"ok": true, "deduped": true})
	} else if err != sql.ErrNoRows {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if err := h.Subscribers.Create(ctx, email, linkUserID); err != nil {
		if err == repository.ErrEmailExists {
			// Raced with another signup for the same address.
			return c.JSON(http.StatusOK, echo.Map{"ok": true, "deduped": true})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "subscribe failed"})
	}

	if err := h.Mail.Send(ctx, email, "Welcome to our newsletter",
		"Thanks for subscribing. Seasonal offers and new suites land here first.\n"); err != nil {
		log.Printf("subscribe: welcome mail to %s failed: %v", email, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// bearerUserID parses an optional Authorization header and returns the
// authenticated user id when the token is valid.
func (h *SubscribeHandler) bearerUserID(c echo.Context) (uint64, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, false
	}
	rawToken := strings.TrimPrefix(authHeader, "Bearer ")
	tok, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.ErrUnauthorized
		}
		return []byte(h.Cfg.JWTSecret), nil
	})
	if err != nil || !tok.Valid {
		return 0, false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	switch subVal := claims["sub"].(type) {
	case float64:
		return uint64(subVal), true
	case string:
		if parsed, err := strconv.ParseUint(subVal, 10, 64); err == nil {
			return parsed, true
		}
	}
	return 0, false
}
