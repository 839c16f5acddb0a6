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

func TestRequestResetRequiresEmail(t *testing.T) {
	t.Parallel()

	h := NewPasswordHandler(config.Config{}, nil, nil, nil, nil)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/request-reset", strings.NewReader(`{"email":"  "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.RequestReset(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
}

func TestResetPasswordRejectsBadInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		body          string
		expectedError string
	}{
		{
			name:          "missing token",
			body:          `{"email":"guest@example.com","password":"longenough"}`,
			expectedError: "token",
		},
		{
			name:          "missing email",
			body:          `{"token":"abc123","password":"longenough"}`,
			expectedError: "email",
		},
		{
			name:          "short password",
			body:          `{"email":"guest@example.com","token":"abc123","password":"short"}`,
			expectedError: "8 characters",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := NewPasswordHandler(config.Config{}, nil, nil, nil, nil)
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/v1/auth/reset-password", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			err := h.ResetPassword(e.NewContext(req, rec))

			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.expectedError)
		})
	}
}
