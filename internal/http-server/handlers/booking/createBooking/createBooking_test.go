package createBooking

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/booking/createBooking/mocks"
	"github.com/DechoChernev1/CustomerBookingService/internal/lib/logger/handlers/slogdiscard"
	"github.com/DechoChernev1/CustomerBookingService/internal/models"
)

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	startDate := models.NewDate(2025, time.March, 1)
	testBooking := &models.Booking{
		ID:        2,
		Title:     "Trip",
		Active:    true,
		StartDate: &startDate,
		Customer:  &models.Customer{ID: 1, Name: "Alice"},
		Brand:     &models.Brand{ID: 3, Name: "Acme"},
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.BookingSaver)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success with references",
			requestBody: `{
				"title": "Trip",
				"active": true,
				"startDate": "2025-03-01",
				"customer": {"id": 1},
				"brand": {"id": 3}
			}`,
			mockSetup: func(m *mocks.BookingSaver) {
				m.On("SaveBooking", mock.AnythingOfType("*models.Booking")).
					Return(testBooking, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Booking)
				assert.Equal(t, int64(2), resp.Booking.ID)
				require.NotNil(t, resp.Booking.Customer)
				assert.Equal(t, "Alice", resp.Booking.Customer.Name)
				require.NotNil(t, resp.Booking.StartDate)
				assert.Equal(t, "2025-03-01", resp.Booking.StartDate.String())
			},
		},
		{
			name: "Success without references",
			requestBody: `{
				"title": "Trip"
			}`,
			mockSetup: func(m *mocks.BookingSaver) {
				m.On("SaveBooking", mock.AnythingOfType("*models.Booking")).
					Return(&models.Booking{ID: 5, Title: "Trip"}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Booking)
				assert.Nil(t, resp.Booking.Customer)
				assert.Nil(t, resp.Booking.Brand)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.BookingSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Invalid date format",
			requestBody:    `{"title": "Trip", "startDate": "01-03-2025"}`,
			mockSetup:      func(m *mocks.BookingSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Title too short",
			requestBody:    `{"title": "ab"}`,
			mockSetup:      func(m *mocks.BookingSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Title must be at least 3"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"title": "Trip"}`,
			mockSetup: func(m *mocks.BookingSaver) {
				m.On("SaveBooking", mock.AnythingOfType("*models.Booking")).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to save booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSaver := mocks.NewBookingSaver(t)
			tc.mockSetup(mockSaver)

			handler := New(logger, mockSaver)

			req, err := http.NewRequest("POST", "/api/bookings", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockSaver.AssertExpectations(t)
		})
	}
}
