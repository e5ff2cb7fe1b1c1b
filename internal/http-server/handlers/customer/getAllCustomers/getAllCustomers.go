package getAllCustomers

import (
	"log/slog"
	"net/http"

	"github.com/DechoChernev1/CustomerBookingService/internal/lib/api/response"
	"github.com/DechoChernev1/CustomerBookingService/internal/lib/logger/sl"
	"github.com/DechoChernev1/CustomerBookingService/internal/models"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Customers []models.Customer `json:"customers"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CustomersGetter
type CustomersGetter interface {
	FindAllCustomers() ([]models.Customer, error)
}

func New(log *slog.Logger, getter CustomersGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.customer.getAllCustomers.New"

		log = log.With(slog.String("op", op))

		customers, err := getter.FindAllCustomers()
		if err != nil {
			log.Error("failed to get customers", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get customers"))
			return
		}

		log.Info("customers retrieved", slog.Int("count", len(customers)))

		render.JSON(w, r, Response{
			Response:  response.OK(),
			Customers: customers,
		})
	}
}
