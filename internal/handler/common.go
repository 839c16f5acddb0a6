package handler // handler defines http handlers

import (
	"errors"  // errors provides sentinel values used in getUserID
	"strconv" // strconv converts strings to numeric types
	"strings" // strings provides trimming helpers
	"time"    // time parses calendar dates

	"github.com/go-playground/validator/v10" // validator checks request DTO tags
	"github.com/labstack/echo/v4"            // echo defines request context types
)

// dateLayout is the wire format for calendar dates in query parameters
// and JSON bodies.  Parsed values are pinned to UTC midnight.
const dateLayout = "2006-01-02"

// validate is shared by all handlers; the validator caches struct
// metadata, so one instance serves every request.
var validate = validator.New()

// parseDate converts a YYYY-MM-DD string into a UTC midnight time.Time.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.UTC)
}

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int64:
		if t > 0 {
			return uint64(t), nil
		}
	case float64:
		// JWT numeric claims decode as float64
		if t > 0 {
			return uint64(t), nil
		}
	case string:
		if n, err := strconv.ParseUint(strings.TrimSpace(t), 10, 64); err == nil && n > 0 {
			return n, nil
		}
	}
	return 0, errors.New("user id missing from context")
}
