package createBooking

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
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSaver
type BookingSaver interface {
	SaveBooking(booking *models.Booking) (*models.Booking, error)
}

func New(log *slog.Logger, saver BookingSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req models.Booking

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

		booking, err := saver.SaveBooking(&req)
		if err != nil {
			log.Error("failed to save booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save booking"))
			return
		}

		log.Info("booking saved", slog.Int64("id", booking.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  booking,
		})
	}
}
