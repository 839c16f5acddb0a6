package middleware

// identity.go defines helper functions shared across middleware files.
// JWTAuth stores the JWT subject claim under "user_id" in the Echo
// context; numeric claims decode as float64 and string subjects stay
// strings.  The cache and rate-limit key builders normalize that value
// here so authenticated and anonymous traffic never share key space
// when a user-scoped strategy is configured.

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// contextUserID returns the authenticated user's id as a decimal string.
// The second return value is false for anonymous requests.
func contextUserID(c echo.Context) (string, bool) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		if t > 0 {
			return strconv.FormatUint(t, 10), true
		}
	case int64:
		if t > 0 {
			return strconv.FormatInt(t, 10), true
		}
	case float64:
		if t > 0 {
			return strconv.FormatUint(uint64(t), 10), true
		}
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return s, true
		}
	}
	return "", false
}

// userID is the cache-key form of the identity: "guest" when anonymous.
func userID(c echo.Context) string {
	if id, ok := contextUserID(c); ok {
		return id
	}
	return "guest"
}

// currentUserID is the rate-limit form: "anon" when anonymous.
func currentUserID(c echo.Context) string {
	if id, ok := contextUserID(c); ok {
		return id
	}
	return "anon"
}
