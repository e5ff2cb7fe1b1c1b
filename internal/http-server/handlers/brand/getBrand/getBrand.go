package getBrand

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
	Brand *models.Brand `json:"brand,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BrandGetter
type BrandGetter interface {
	FindBrandByID(id int64) (*models.Brand, error)
}

func New(log *slog.Logger, getter BrandGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.brand.getBrand.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			log.Error("invalid brand id")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid brand id"))
			return
		}

		brand, err := getter.FindBrandByID(id)
		if err != nil {
			if errors.Is(err, storage.ErrBrandNotFound) {
				log.Info("brand not found", slog.Int64("brand_id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("brand not found"))
				return
			}

			log.Error("failed to get brand", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get brand"))
			return
		}

		log.Info("brand retrieved", slog.Int64("brand_id", id))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Brand:    brand,
		})
	}
}
