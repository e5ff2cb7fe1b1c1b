package updateCustomer

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
	Customer *models.Customer `json:"customer,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CustomerUpdater
type CustomerUpdater interface {
	UpdateCustomer(id int64, customer *models.Customer) (*models.Customer, error)
}

func New(log *slog.Logger, updater CustomerUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.customer.updateCustomer.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			log.Error("invalid customer id")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid customer id"))
			return
		}

		log = log.With(slog.Int64("customer_id", id))

		var req models.Customer

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

		customer, err := updater.UpdateCustomer(id, &req)
		if err != nil {
			if errors.Is(err, storage.ErrCustomerNotFound) {
				log.Info("customer not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("customer not found"))
				return
			}

			log.Error("failed to update customer", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update customer"))
			return
		}

		log.Info("customer updated")

		render.JSON(w, r, Response{
			Response: response.OK(),
			Customer: customer,
		})
	}
}
