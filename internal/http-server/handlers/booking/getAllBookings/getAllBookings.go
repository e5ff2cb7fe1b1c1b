package getAllBookings

import (
	"log/slog"
	"net/http"

	"github.com/DechoChernev1/CustomerBookingService/internal/lib/api/response"
	"github.com/DechoChernev1/CustomerBookingService/internal/lib/logger/sl"
	"github.com/DechoChernev1/CustomerBookingService/internal/models"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsGetter
type BookingsGetter interface {
	FindAllBookings() ([]models.Booking, error)
}

func New(log *slog.Logger, getter BookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getAllBookings.New"

		log = log.With(slog.String("op", op))

		bookings, err := getter.FindAllBookings()
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("bookings retrieved", slog.Int("count", len(bookings)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}
