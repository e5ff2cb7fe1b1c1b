package createBrand

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/DechoChernev1/CustomerBookingService/internal/lib/api/response"
	"github.com/DechoChernev1/CustomerBookingService/internal/lib/logger/sl"
	"github.com/DechoChernev1/CustomerBookingService/internal/models"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	response.Response
	Brand *models.Brand `json:"brand,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BrandSaver
type BrandSaver interface {
	SaveBrand(brand *models.Brand) (*models.Brand, error)
}

func New(log *slog.Logger, saver BrandSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.brand.createBrand.New"

		log = log.With(slog.String("op", op))

		var req models.Brand

		err := render.DecodeJSON(r.Body, &req)
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

		brand, err := saver.SaveBrand(&req)
		if err != nil {
			log.Error("failed to save brand", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save brand"))
			return
		}

		log.Info("brand saved", slog.Int64("id", brand.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Brand:    brand,
		})
	}
}
