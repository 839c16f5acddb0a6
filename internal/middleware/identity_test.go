package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/hotel-booking/internal/config"
)

func ctxWithUser(t *testing.T, uid interface{}) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/my-bookings?page=1", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if uid != nil {
		c.Set("user_id", uid)
	}
	return c
}

func TestContextUserIDClaimTypes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		uid      interface{}
		expected string
		ok       bool
	}{
		{name: "float64 jwt claim", uid: float64(42), expected: "42", ok: true},
		{name: "string subject", uid: "42", expected: "42", ok: true},
		{name: "uint64", uid: uint64(7), expected: "7", ok: true},
		{name: "int64", uid: int64(7), expected: "7", ok: true},
		{name: "anonymous", uid: nil, expected: "", ok: false},
		{name: "zero id", uid: float64(0), expected: "", ok: false},
		{name: "blank string", uid: "   ", expected: "", ok: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			id, ok := contextUserID(ctxWithUser(t, tc.uid))
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func TestUserScopedCacheKeysDoNotCollide(t *testing.T) {
	t.Parallel()

	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "user_route_query"}

	// JWTAuth stores the numeric sub claim as float64.
	keyA := cacheKeyFrom(cfg, ctxWithUser(t, float64(7)))
	keyB := cacheKeyFrom(cfg, ctxWithUser(t, float64(8)))
	keyAnon := cacheKeyFrom(cfg, ctxWithUser(t, nil))

	assert.NotEqual(t, keyA, keyB)
	assert.NotEqual(t, keyA, keyAnon)
	assert.NotEqual(t, keyB, keyAnon)

	// Same user, same request shape: stable key.
	assert.Equal(t, keyA, cacheKeyFrom(cfg, ctxWithUser(t, float64(7))))
}

func TestRateLimitKeyUsesAuthenticatedUser(t *testing.T) {
	t.Parallel()

	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user_route"}

	keyA := buildRateKey(cfg, ctxWithUser(t, float64(7)))
	keyB := buildRateKey(cfg, ctxWithUser(t, float64(8)))
	keyAnon := buildRateKey(cfg, ctxWithUser(t, nil))

	assert.Contains(t, keyA, ":user:7:")
	assert.Contains(t, keyB, ":user:8:")
	assert.Contains(t, keyAnon, ":user:anon:")
	assert.NotEqual(t, keyA, keyB)
}
