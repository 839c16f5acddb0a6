package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/hotel-booking/internal/config"
)

func newAuthCtx(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterRejectsBadInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"email":`},
		{name: "missing email", body: `{"password":"hunter22"}`},
		{name: "missing password", body: `{"email":"guest@example.com"}`},
		{name: "blank email", body: `{"email":"   ","password":"hunter22"}`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := NewAuthHandler(config.Config{}, nil, nil)
			c, rec := newAuthCtx(t, tc.body)

			err := h.Register(c)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLoginRejectsBadInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `nope`},
		{name: "missing password", body: `{"email":"guest@example.com"}`},
		{name: "missing email", body: `{"password":"hunter22"}`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := NewAuthHandler(config.Config{}, nil, nil)
			c, rec := newAuthCtx(t, tc.body)

			err := h.Login(c)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRefreshRequiresToken(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(config.Config{}, nil, nil)
	c, rec := newAuthCtx(t, `{"refresh_token":"  "}`)

	err := h.Refresh(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "refresh_token")
}

func TestLogoutWithoutCredentials(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(config.Config{JWTSecret: "test-secret"}, nil, nil)
	c, rec := newAuthCtx(t, `{}`)

	err := h.Logout(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
