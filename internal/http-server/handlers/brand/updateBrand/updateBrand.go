package updateBrand

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
	"github.com/go-playground/validator/v10"
)

type Response struct {
	response.Response
	Brand *models.Brand `json:"brand,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BrandUpdater
type BrandUpdater interface {
	UpdateBrand(id int64, brand *models.Brand) (*models.Brand, error)
}

func New(log *slog.Logger, updater BrandUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.brand.updateBrand.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			log.Error("invalid brand id")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid brand id"))
			return
		}

		log = log.With(slog.Int64("brand_id", id))

		var req models.Brand

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		brand, err := updater.UpdateBrand(id, &req)
		if err != nil {
			if errors.Is(err, storage.ErrBrandNotFound) {
				log.Info("brand not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("brand not found"))
				return
			}

			log.Error("failed to update brand", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update brand"))
			return
		}

		log.Info("brand updated")

		render.JSON(w, r, Response{
			Response: response.OK(),
			Brand:    brand,
		})
	}
}
