package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-booking/internal/utils"
)

const testSecret = "unit-test-secret"

func runJWT(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := JWTAuth(testSecret)(next)(c)
	require.NoError(t, err)
	return rec, c
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	t.Parallel()

	rec, _ := runJWT(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsGarbageToken(t *testing.T) {
	t.Parallel()

	rec, _ := runJWT(t, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := utils.NewAccessToken("some-other-secret", 7, "GUEST", 5)
	require.NoError(t, err)

	rec, _ := runJWT(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthInjectsClaims(t *testing.T) {
	t.Parallel()

	tok, err := utils.NewAccessToken(testSecret, 42, "GUEST", 5)
	require.NoError(t, err)

	rec, c := runJWT(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	// JWT numeric claims decode as float64.
	assert.Equal(t, float64(42), c.Get("user_id"))
	assert.Equal(t, "GUEST", c.Get("role"))
}
