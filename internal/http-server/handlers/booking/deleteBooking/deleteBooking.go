package deleteBooking

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DechoChernev1/CustomerBookingService/internal/lib/api/response"
	"github.com/DechoChernev1/CustomerBookingService/internal/lib/logger/sl"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Deleted bool `json:"deleted"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingDeleter
type BookingDeleter interface {
	DeleteBooking(id int64) (bool, error)
}

func New(log *slog.Logger, deleter BookingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.deleteBooking.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			log.Error("invalid booking id")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id"))
			return
		}

		deleted, err := deleter.DeleteBooking(id)
		if err != nil {
			log.Error("failed to delete booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete booking"))
			return
		}

		log.Info("booking delete processed", slog.Int64("booking_id", id), slog.Bool("deleted", deleted))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Deleted:  deleted,
		})
	}
}
