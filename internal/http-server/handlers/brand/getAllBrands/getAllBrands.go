package getAllBrands

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
	Brands []models.Brand `json:"brands"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BrandsGetter
type BrandsGetter interface {
	FindAllBrands() ([]models.Brand, error)
}

func New(log *slog.Logger, getter BrandsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.brand.getAllBrands.New"

		log = log.With(slog.String("op", op))

		brands, err := getter.FindAllBrands()
		if err != nil {
			log.Error("failed to get brands", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get brands"))
			return
		}

		log.Info("brands retrieved", slog.Int("count", len(brands)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Brands:   brands,
		})
	}
}
