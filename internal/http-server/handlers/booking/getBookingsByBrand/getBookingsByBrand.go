package getBookingsByBrand

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
	FindBookingsByBrandID(brandID int64) ([]models.Booking, error)
}

// New serves both /api/brands/{brandId}/bookings and
// /api/bookings/brand/{brandId}, with the same empty-list contract as the
// customer lookup.
func New(log *slog.Logger, getter BookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBookingsByBrand.New"

		log = log.With(slog.String("op", op))

		brandID, err := strconv.ParseInt(chi.URLParam(r, "brandId"), 10, 64)
		if err != nil || brandID <= 0 {
			log.Error("invalid brand id")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid brand id"))
			return
		}

		bookings, err := getter.FindBookingsByBrandID(brandID)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("bookings retrieved", slog.Int64("brand_id", brandID), slog.Int("count", len(bookings)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}
