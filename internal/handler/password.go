package handler

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/config"
	"github.com/iliyamo/hotel-booking/internal/mailer"
	"github.com/iliyamo/hotel-booking/internal/repository"
	"github.com/iliyamo/hotel-booking/internal/utils"
)

// PasswordHandler serves the forgot/reset password flow.
type PasswordHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Resets *repository.ResetTokenRepo
	Tokens *repository.TokenRepo
	Mail   mailer.Sender
}

func NewPasswordHandler(cfg config.Config, u *repository.UserRepo, r *repository.ResetTokenRepo, t *repository.TokenRepo, m mailer.Sender) *PasswordHandler {
	return &PasswordHandler{Cfg: cfg, Users: u, Resets: r, Tokens: t, Mail: m}
}

type requestResetReq struct {
	Email string `json:"email"`
}

type resetPasswordReq struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

// RequestReset issues a reset token and mails a link.  The response is
// always {"ok":true} so callers cannot probe which emails have accounts.
func (h *PasswordHandler) RequestReset(c echo.Context) error {
	var req requestResetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.GetByEmail(ctx, email); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusOK, echo.Map{"ok": true})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	raw, err := utils.RandomHex(32)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token generation failed"})
	}
	exp := time.Now().UTC().Add(time.Duration(h.Cfg.ResetTTLMin) * time.Minute)
	if err := h.Resets.Replace(ctx, email, utils.HashToken(raw), exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save token failed"})
	}

	link := fmt.Sprintf("%s/auth/reset-password?token=%s&email=%s",
		strings.TrimRight(h.Cfg.BaseURL, "/"), raw, url.QueryEscape(email))
	body := fmt.Sprintf("Reset your password within %d minutes:\n\n%s\n", h.Cfg.ResetTTLMin, link)
	if err := h.Mail.Send(ctx, email, "Reset your password", body); err != nil {
		// Token is already stored; the user can retry the request.
		log.Printf("password: send reset mail to %s failed: %v", email, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// ResetPassword consumes a valid token and sets the new password.
func (h *PasswordHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	token := strings.TrimSpace(req.Token)
	if email == "" || token == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and token required"})
	}
	if len(req.Password) < 8 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password must be at least 8 characters"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Resets.Consume(ctx, email, utils.HashToken(token)); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid or expired token"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token check failed"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash failed"})
	}
	if err := h.Users.UpdatePassword(ctx, email, hash); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid or expired token"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	// A reset means the old credential may be compromised; end every
	// live session so stolen refresh tokens die with it.
	if u, err := h.Users.GetByEmail(ctx, email); err == nil {
		if err := h.Tokens.RevokeAllForUser(ctx, u.ID); err != nil {
			log.Printf("password: revoke sessions for %s failed: %v", email, err)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
