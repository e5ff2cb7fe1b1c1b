package addBrandToBooking

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/booking/addBrandToBooking/mocks"
	"github.com/DechoChernev1/CustomerBookingService/internal/lib/logger/handlers/slogdiscard"
	"github.com/DechoChernev1/CustomerBookingService/internal/models"
	"github.com/DechoChernev1/CustomerBookingService/internal/storage"
)

func TestAddBrandToBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testBrand := &models.Brand{ID: 3, Name: "Acme", ShortCode: "ACM"}

	testCases := []struct {
		name           string
		bookingID      string
		brandID        string
		mockSetup      func(bookings *mocks.BookingProvider, brands *mocks.BrandProvider)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:      "Success",
			bookingID: "2",
			brandID:   "3",
			mockSetup: func(bookings *mocks.BookingProvider, brands *mocks.BrandProvider) {
				bookings.On("FindBookingByID", int64(2)).
					Return(&models.Booking{ID: 2, Title: "Trip"}, nil)
				brands.On("FindBrandByID", int64(3)).Return(testBrand, nil)
				bookings.On("UpdateBooking", int64(2), mock.MatchedBy(func(b *models.Booking) bool {
					return b.Brand != nil && b.Brand.ID == 3
				})).Return(&models.Booking{ID: 2, Title: "Trip", Brand: testBrand}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Booking)
				require.NotNil(t, resp.Booking.Brand)
				assert.Equal(t, int64(3), resp.Booking.Brand.ID)
			},
		},
		{
			name:      "Booking not found",
			bookingID: "999",
			brandID:   "3",
			mockSetup: func(bookings *mocks.BookingProvider, brands *mocks.BrandProvider) {
				bookings.On("FindBookingByID", int64(999)).
					Return(nil, storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:      "Brand not found",
			bookingID: "2",
			brandID:   "999",
			mockSetup: func(bookings *mocks.BookingProvider, brands *mocks.BrandProvider) {
				bookings.On("FindBookingByID", int64(2)).
					Return(&models.Booking{ID: 2, Title: "Trip"}, nil)
				brands.On("FindBrandByID", int64(999)).
					Return(nil, storage.ErrBrandNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"brand not found"}`,
		},
		{
			name:           "Invalid booking id",
			bookingID:      "abc",
			brandID:        "3",
			mockSetup:      func(bookings *mocks.BookingProvider, brands *mocks.BrandProvider) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid booking id"}`,
		},
		{
			name:           "Invalid brand id",
			bookingID:      "2",
			brandID:        "abc",
			mockSetup:      func(bookings *mocks.BookingProvider, brands *mocks.BrandProvider) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid brand id"}`,
		},
		{
			name:      "Booking vanished on update",
			bookingID: "2",
			brandID:   "3",
			mockSetup: func(bookings *mocks.BookingProvider, brands *mocks.BrandProvider) {
				bookings.On("FindBookingByID", int64(2)).
					Return(&models.Booking{ID: 2, Title: "Trip"}, nil)
				brands.On("FindBrandByID", int64(3)).Return(testBrand, nil)
				bookings.On("UpdateBooking", int64(2), mock.AnythingOfType("*models.Booking")).
					Return(nil, storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:      "Internal server error",
			bookingID: "2",
			brandID:   "3",
			mockSetup: func(bookings *mocks.BookingProvider, brands *mocks.BrandProvider) {
				bookings.On("FindBookingByID", int64(2)).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockBookings := mocks.NewBookingProvider(t)
			mockBrands := mocks.NewBrandProvider(t)
			tc.mockSetup(mockBookings, mockBrands)

			router := chi.NewRouter()
			router.Put("/api/bookings/addBrand/{bookingId}/{brandId}", New(logger, mockBookings, mockBrands))

			req, err := http.NewRequest("PUT", "/api/bookings/addBrand/"+tc.bookingID+"/"+tc.brandID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockBookings.AssertExpectations(t)
			mockBrands.AssertExpectations(t)
		})
	}
}
