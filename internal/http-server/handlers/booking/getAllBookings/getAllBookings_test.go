package getAllBookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/booking/getAllBookings/mocks"
	"github.com/DechoChernev1/CustomerBookingService/internal/lib/logger/handlers/slogdiscard"
	"github.com/DechoChernev1/CustomerBookingService/internal/models"
)

func TestGetAllBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(mock *mocks.BookingsGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success with bookings",
			mockSetup: func(m *mocks.BookingsGetter) {
				m.On("FindAllBookings").Return([]models.Booking{
					{ID: 1, Title: "Trip", Customer: &models.Customer{ID: 1}},
					{ID: 2, Title: "Conference", Brand: &models.Brand{ID: 3}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.Len(t, resp.Bookings, 2)
				assert.Equal(t, "Trip", resp.Bookings[0].Title)
				require.NotNil(t, resp.Bookings[1].Brand)
			},
		},
		{
			name: "Success with empty list",
			mockSetup: func(m *mocks.BookingsGetter) {
				m.On("FindAllBookings").Return([]models.Booking{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Empty(t, resp.Bookings)
			},
		},
		{
			name: "Internal server error",
			mockSetup: func(m *mocks.BookingsGetter) {
				m.On("FindAllBookings").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get bookings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewBookingsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/api/bookings", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockGetter.AssertExpectations(t)
		})
	}
}
