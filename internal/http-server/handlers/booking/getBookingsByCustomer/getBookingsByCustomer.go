package getBookingsByCustomer

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DechoChernev1/CustomerBookingService/internal/lib/api/response"
	"github.com/DechoChernev1/CustomerBookingService/internal/lib/logger/sl"
	"github.com/DechoChernev1/CustomerBookingService/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsGetter
type BookingsGetter interface {
	FindBookingsByCustomerID(customerID int64) ([]models.Booking, error)
}

// New serves both /api/customers/{customerId}/bookings and
// /api/bookings/customer/{customerId}. An unknown customer id yields an
// empty list, not a 404.
func New(log *slog.Logger, getter BookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBookingsByCustomer.New"

		log = log.With(slog.String("op", op))

		customerID, err := strconv.ParseInt(chi.URLParam(r, "customerId"), 10, 64)
		if err != nil || customerID <= 0 {
			log.Error("invalid customer id")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid customer id"))
			return
		}

		bookings, err := getter.FindBookingsByCustomerID(customerID)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("bookings retrieved", slog.Int64("customer_id", customerID), slog.Int("count", len(bookings)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}
