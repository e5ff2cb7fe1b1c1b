package addBrandToBooking

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingProvider
type BookingProvider interface {
	FindBookingByID(id int64) (*models.Booking, error)
	UpdateBooking(id int64, booking *models.Booking) (*models.Booking, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BrandProvider
type BrandProvider interface {
	FindBrandByID(id int64) (*models.Brand, error)
}

// New attaches an existing brand to an existing booking. Either lookup
// missing short-circuits the whole operation with a 404 and leaves both
// records unmodified.
func New(log *slog.Logger, bookings BookingProvider, brands BrandProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.addBrandToBooking.New"

		log = log.With(slog.String("op", op))

		bookingID, err := strconv.ParseInt(chi.URLParam(r, "bookingId"), 10, 64)
		if err != nil || bookingID <= 0 {
			log.Error("invalid booking id")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id"))
			return
		}

		brandID, err := strconv.ParseInt(chi.URLParam(r, "brandId"), 10, 64)
		if err != nil || brandID <= 0 {
			log.Error("invalid brand id")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid brand id"))
			return
		}

		log = log.With(slog.Int64("booking_id", bookingID), slog.Int64("brand_id", brandID))

		booking, err := bookings.FindBookingByID(bookingID)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				log.Info("booking not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			log.Error("failed to get booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booking"))
			return
		}

		brand, err := brands.FindBrandByID(brandID)
		if err != nil {
			if errors.Is(err, storage.ErrBrandNotFound) {
				log.Info("brand not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("brand not found"))
				return
			}

			log.Error("failed to get brand", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get brand"))
			return
		}

		booking.Brand = brand

		updated, err := bookings.UpdateBooking(bookingID, booking)
		if err != nil {
			// defensive re-check: the booking may have vanished between
			// the lookup and the update
			if errors.Is(err, storage.ErrBookingNotFound) {
				log.Info("booking not found on update")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			log.Error("failed to update booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update booking"))
			return
		}

		log.Info("brand attached to booking")

		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  updated,
		})
	}
}
