package updateBooking

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/booking/updateBooking/mocks"
	"github.com/DechoChernev1/CustomerBookingService/internal/lib/logger/handlers/slogdiscard"
	"github.com/DechoChernev1/CustomerBookingService/internal/models"
	"github.com/DechoChernev1/CustomerBookingService/internal/storage"
)

func TestUpdateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		bookingID      string
		requestBody    string
		mockSetup      func(mock *mocks.BookingUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:      "Success with brand re-pointing",
			bookingID: "2",
			requestBody: `{
				"title": "Trip Updated",
				"active": true,
				"brand": {"id": 4}
			}`,
			mockSetup: func(m *mocks.BookingUpdater) {
				m.On("UpdateBooking", int64(2), mock.AnythingOfType("*models.Booking")).
					Return(&models.Booking{
						ID:     2,
						Title:  "Trip Updated",
						Active: true,
						Brand:  &models.Brand{ID: 4, Name: "Globex"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Booking)
				assert.Equal(t, "Trip Updated", resp.Booking.Title)
				require.NotNil(t, resp.Booking.Brand)
				assert.Equal(t, int64(4), resp.Booking.Brand.ID)
			},
		},
		{
			name:        "Booking not found",
			bookingID:   "999",
			requestBody: `{"title": "Trip Updated"}`,
			mockSetup: func(m *mocks.BookingUpdater) {
				m.On("UpdateBooking", int64(999), mock.AnythingOfType("*models.Booking")).
					Return(nil, storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:           "Invalid booking id",
			bookingID:      "abc",
			requestBody:    `{"title": "Trip"}`,
			mockSetup:      func(m *mocks.BookingUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid booking id"}`,
		},
		{
			name:           "Invalid JSON",
			bookingID:      "2",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.BookingUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Title too short",
			bookingID:      "2",
			requestBody:    `{"title": "ab"}`,
			mockSetup:      func(m *mocks.BookingUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Title must be at least 3"}`,
		},
		{
			name:        "Internal server error",
			bookingID:   "2",
			requestBody: `{"title": "Trip"}`,
			mockSetup: func(m *mocks.BookingUpdater) {
				m.On("UpdateBooking", int64(2), mock.AnythingOfType("*models.Booking")).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewBookingUpdater(t)
			tc.mockSetup(mockUpdater)

			router := chi.NewRouter()
			router.Put("/api/bookings/{id}", New(logger, mockUpdater))

			req, err := http.NewRequest("PUT", "/api/bookings/"+tc.bookingID, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockUpdater.AssertExpectations(t)
		})
	}
}
