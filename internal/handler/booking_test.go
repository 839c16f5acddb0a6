package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// newBookingCtx builds an echo context for a booking endpoint.  A uid of 0
// leaves the request anonymous, mirroring a request that never passed the
// auth middleware.
func newBookingCtx(t *testing.T, method, target, body string, uid float64) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if uid > 0 {
		c.Set("user_id", uid)
		c.Set("role", "GUEST")
	}
	return c, rec
}

func TestCreateBookingRejectsBadInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		uid            float64
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "anonymous request",
			uid:            0,
			body:           `{"room_id":1,"check_in":"2026-10-01","check_out":"2026-10-03","guests":2}`,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "unauthorized",
		},
		{
			name:           "malformed json",
			uid:            7,
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid body",
		},
		{
			name:           "missing fields",
			uid:            7,
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "required",
		},
		{
			name:           "zero guests",
			uid:            7,
			body:           `{"room_id":1,"check_in":"2026-10-01","check_out":"2026-10-03","guests":0}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "required",
		},
		{
			name:           "unparseable check_in",
			uid:            7,
			body:           `{"room_id":1,"check_in":"01.10.2026","check_out":"2026-10-03","guests":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "INVALID_DATES",
		},
		{
			name:           "unparseable check_out",
			uid:            7,
			body:           `{"room_id":1,"check_in":"2026-10-01","check_out":"tomorrow","guests":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "INVALID_DATES",
		},
		{
			name:           "check_out before check_in",
			uid:            7,
			body:           `{"room_id":1,"check_in":"2026-10-05","check_out":"2026-10-03","guests":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "INVALID_DATES",
		},
		{
			name:           "zero nights",
			uid:            7,
			body:           `{"room_id":1,"check_in":"2026-10-03","check_out":"2026-10-03","guests":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "INVALID_DATES",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := NewBookingHandler(nil, nil, nil, nil)
			c, rec := newBookingCtx(t, http.MethodPost, "/v1/bookings", tc.body, tc.uid)

			err := h.Create(c)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.expectedError)
		})
	}
}

func TestListMineRequiresAuth(t *testing.T) {
	t.Parallel()

	h := NewBookingHandler(nil, nil, nil, nil)
	c, rec := newBookingCtx(t, http.MethodGet, "/v1/my-bookings", "", 0)

	err := h.ListMine(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteBookingRejectsBadInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		uid            float64
		id             string
		expectedStatus int
	}{
		{name: "anonymous request", uid: 0, id: "12", expectedStatus: http.StatusUnauthorized},
		{name: "non numeric id", uid: 7, id: "abc", expectedStatus: http.StatusBadRequest},
		{name: "zero id", uid: 7, id: "0", expectedStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := NewBookingHandler(nil, nil, nil, nil)
			c, rec := newBookingCtx(t, http.MethodDelete, "/v1/bookings/"+tc.id, "", tc.uid)
			c.SetParamNames("id")
			c.SetParamValues(tc.id)

			err := h.Delete(c)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}
