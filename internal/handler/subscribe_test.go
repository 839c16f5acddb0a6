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

func TestSubscribeRejectsBadInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{`},
		{name: "missing email", body: `{}`},
		{name: "not an email", body: `{"email":"not-an-email"}`},
		{name: "blank email", body: `{"email":"   "}`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := NewSubscribeHandler(config.Config{}, nil, nil, nil)
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/v1/subscribe", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			err := h.Subscribe(e.NewContext(req, rec))

			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
