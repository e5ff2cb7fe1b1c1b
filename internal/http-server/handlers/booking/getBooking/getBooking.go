package getBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DechoChernev1/CustomerBookingService/internal/lib/api/response"
	"github.com/DechoChernev1/CustomerBookingService/internal/lib/logger/sl"
	"github.com/DechoChernev1/CustomerBookingService/internal/models"
	"github.com/DechoChernev1/CustomerBookingService/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGetter
type BookingGetter interface {
	FindBookingByID(id int64) (*models.Booking, error)
}

func New(log *slog.Logger, getter BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			log.Error("invalid booking id")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id"))
			return
		}

		booking, err := getter.FindBookingByID(id)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				log.Info("booking not found", slog.Int64("booking_id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			log.Error("failed to get booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booking"))
			return
		}

		log.Info("booking retrieved", slog.Int64("booking_id", id))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  booking,
		})
	}
}
