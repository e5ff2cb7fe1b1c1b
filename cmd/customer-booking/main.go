package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DechoChernev1/CustomerBookingService/internal/config"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/booking/addBrandToBooking"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/booking/createBooking"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/booking/deleteBooking"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/booking/getAllBookings"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/booking/getBooking"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/booking/getBookingsByBrand"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/booking/getBookingsByCustomer"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/booking/updateBooking"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/brand/createBrand"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/brand/deleteBrand"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/brand/getAllBrands"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/brand/getBrand"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/brand/updateBrand"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/customer/createCustomer"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/customer/deleteCustomer"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/customer/getAllCustomers"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/customer/getCustomer"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/handlers/customer/updateCustomer"
	"github.com/DechoChernev1/CustomerBookingService/internal/http-server/middleware/mwlogger"
	"github.com/DechoChernev1/CustomerBookingService/internal/lib/logger/handlers/slogpretty"
	"github.com/DechoChernev1/CustomerBookingService/internal/lib/logger/sl"
	"github.com/DechoChernev1/CustomerBookingService/internal/service"
	"github.com/DechoChernev1/CustomerBookingService/internal/storage/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting customer booking service", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	customers := service.NewCustomerService(log, storage)
	brands := service.NewBrandService(log, storage)
	bookings := service.NewBookingService(log, storage)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/api", func(r chi.Router) {
		r.Get("/customers", getAllCustomers.New(log, customers))
		r.Get("/customers/{id}", getCustomer.New(log, customers))
		r.Post("/customers", createCustomer.New(log, customers))
		r.Put("/customers/{id}", updateCustomer.New(log, customers))
		r.Delete("/customers/{id}", deleteCustomer.New(log, customers))
		r.Get("/customers/{customerId}/bookings", getBookingsByCustomer.New(log, bookings))

		r.Get("/brands", getAllBrands.New(log, brands))
		r.Get("/brands/{id}", getBrand.New(log, brands))
		r.Post("/brands", createBrand.New(log, brands))
		r.Put("/brands/{id}", updateBrand.New(log, brands))
		r.Delete("/brands/{id}", deleteBrand.New(log, brands))
		r.Get("/brands/{brandId}/bookings", getBookingsByBrand.New(log, bookings))

		r.Get("/bookings", getAllBookings.New(log, bookings))
		r.Get("/bookings/{id}", getBooking.New(log, bookings))
		r.Post("/bookings", createBooking.New(log, bookings))
		r.Put("/bookings/{id}", updateBooking.New(log, bookings))
		r.Delete("/bookings/{id}", deleteBooking.New(log, bookings))
		r.Get("/bookings/customer/{customerId}", getBookingsByCustomer.New(log, bookings))
		r.Get("/bookings/brand/{brandId}", getBookingsByBrand.New(log, bookings))
		r.Put("/bookings/addBrand/{bookingId}/{brandId}", addBrandToBooking.New(log, bookings, brands))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
