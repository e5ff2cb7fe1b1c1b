package getCustomer

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
	Customer *models.Customer `json:"customer,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CustomerGetter
type CustomerGetter interface {
	FindCustomerByID(id int64) (*models.Customer, error)
}

func New(log *slog.Logger, getter CustomerGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.customer.getCustomer.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			log.Error("invalid customer id")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid customer id"))
			return
		}

		customer, err := getter.FindCustomerByID(id)
		if err != nil {
			if errors.Is(err, storage.ErrCustomerNotFound) {
				log.Info("customer not found", slog.Int64("customer_id", id))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("customer not found"))
				return
			}

			log.Error("failed to get customer", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get customer"))
			return
		}

		log.Info("customer retrieved", slog.Int64("customer_id", id))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Customer: customer,
		})
	}
}
