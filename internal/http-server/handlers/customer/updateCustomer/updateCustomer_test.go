package updateCustomer

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

	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/customer/updateCustomer/mocks"
	"github.com/DechoChernev1/CustomerBookingService/internal/lib/logger/handlers/slogdiscard"
	"github.com/DechoChernev1/CustomerBookingService/internal/models"
	"github.com/DechoChernev1/CustomerBookingService/internal/storage"
)

func TestUpdateCustomerHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		customerID     string
		requestBody    string
		mockSetup      func(mock *mocks.CustomerUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:       "Success",
			customerID: "1",
			requestBody: `{
				"name": "Alice Updated",
				"email": "alice@example.com",
				"age": 26,
				"active": true
			}`,
			mockSetup: func(m *mocks.CustomerUpdater) {
				m.On("UpdateCustomer", int64(1), mock.AnythingOfType("*models.Customer")).
					Return(&models.Customer{
						ID:     1,
						Name:   "Alice Updated",
						Email:  "alice@example.com",
						Age:    26,
						Active: true,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Customer)
				assert.Equal(t, int64(1), resp.Customer.ID)
				assert.Equal(t, "Alice Updated", resp.Customer.Name)
			},
		},
		{
			name:       "Customer not found",
			customerID: "999",
			requestBody: `{
				"name": "Alice Updated",
				"age": 26
			}`,
			mockSetup: func(m *mocks.CustomerUpdater) {
				m.On("UpdateCustomer", int64(999), mock.AnythingOfType("*models.Customer")).
					Return(nil, storage.ErrCustomerNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"customer not found"}`,
		},
		{
			name:           "Invalid customer id",
			customerID:     "abc",
			requestBody:    `{"name": "Alice", "age": 26}`,
			mockSetup:      func(m *mocks.CustomerUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid customer id"}`,
		},
		{
			name:           "Negative customer id",
			customerID:     "-1",
			requestBody:    `{"name": "Alice", "age": 26}`,
			mockSetup:      func(m *mocks.CustomerUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid customer id"}`,
		},
		{
			name:           "Invalid JSON",
			customerID:     "1",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.CustomerUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:       "Age below minimum",
			customerID: "1",
			requestBody: `{
				"name": "Alice",
				"age": 17
			}`,
			mockSetup:      func(m *mocks.CustomerUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Age must be at least 18"}`,
		},
		{
			name:       "Internal server error",
			customerID: "1",
			requestBody: `{
				"name": "Alice",
				"age": 26
			}`,
			mockSetup: func(m *mocks.CustomerUpdater) {
				m.On("UpdateCustomer", int64(1), mock.AnythingOfType("*models.Customer")).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update customer"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewCustomerUpdater(t)
			tc.mockSetup(mockUpdater)

			router := chi.NewRouter()
			router.Put("/api/customers/{id}", New(logger, mockUpdater))

			req, err := http.NewRequest("PUT", "/api/customers/"+tc.customerID, bytes.NewBufferString(tc.requestBody))
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
