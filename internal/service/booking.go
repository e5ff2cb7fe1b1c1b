package service

import (
	"fmt"
	"log/slog"

	"github.com/DechoChernev1/CustomerBookingService/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingStorage
type BookingStorage interface {
	SaveBooking(b *models.Booking) error
	BookingByID(id int64) (*models.Booking, error)
	AllBookings() ([]models.Booking, error)
	UpdateBooking(b *models.Booking) error
	DeleteBooking(id int64) error
	BookingExists(id int64) (bool, error)
	BookingsByCustomerID(customerID int64) ([]models.Booking, error)
	BookingsByBrandID(brandID int64) ([]models.Booking, error)
}

type BookingService struct {
	log     *slog.Logger
	storage BookingStorage
}

func NewBookingService(log *slog.Logger, storage BookingStorage) *BookingService {
	return &BookingService{
		log:     log,
		storage: storage,
	}
}

func (s *BookingService) FindAllBookings() ([]models.Booking, error) {
	const op = "service.FindAllBookings"

	bookings, err := s.storage.AllBookings()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (s *BookingService) FindBookingByID(id int64) (*models.Booking, error) {
	const op = "service.FindBookingByID"

	booking, err := s.storage.BookingByID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return booking, nil
}

// SaveBooking creates a new booking. Nested customer and brand objects are
// reduced to their identifiers before persisting, so related records are
// referenced, never created.
func (s *BookingService) SaveBooking(details *models.Booking) (*models.Booking, error) {
	const op = "service.SaveBooking"

	booking := &models.Booking{
		Title:       details.Title,
		Description: details.Description,
		Active:      details.Active,
		StartDate:   details.StartDate,
		EndDate:     details.EndDate,
	}
	if details.Customer != nil {
		booking.Customer = &models.Customer{ID: details.Customer.ID}
	}
	if details.Brand != nil {
		booking.Brand = &models.Brand{ID: details.Brand.ID}
	}

	if err := s.storage.SaveBooking(booking); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("booking saved", slog.Int64("id", booking.ID))

	// re-read so the response carries the resolved references
	saved, err := s.storage.BookingByID(booking.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

// UpdateBooking loads the stored booking and overwrites exactly title,
// description, active, startDate and endDate. The brand reference is
// re-pointed only when the input carries a brand; the customer reference
// is never touched by an update.
func (s *BookingService) UpdateBooking(id int64, details *models.Booking) (*models.Booking, error) {
	const op = "service.UpdateBooking"

	booking, err := s.storage.BookingByID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	booking.Title = details.Title
	booking.Description = details.Description
	booking.Active = details.Active
	booking.StartDate = details.StartDate
	booking.EndDate = details.EndDate
	if details.Brand != nil {
		booking.Brand = &models.Brand{ID: details.Brand.ID}
	}

	if err = s.storage.UpdateBooking(booking); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("booking updated", slog.Int64("id", id))

	updated, err := s.storage.BookingByID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// DeleteBooking deletes unconditionally and reports the record's absence
// afterwards.
func (s *BookingService) DeleteBooking(id int64) (bool, error) {
	const op = "service.DeleteBooking"

	if err := s.storage.DeleteBooking(id); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := s.storage.BookingExists(id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("booking deleted", slog.Int64("id", id), slog.Bool("deleted", !exists))

	return !exists, nil
}

// FindBookingsByCustomerID returns the bookings owned by the given customer.
// An unknown customer id yields an empty list, not an error.
func (s *BookingService) FindBookingsByCustomerID(customerID int64) ([]models.Booking, error) {
	const op = "service.FindBookingsByCustomerID"

	bookings, err := s.storage.BookingsByCustomerID(customerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

// FindBookingsByBrandID returns the bookings referencing the given brand,
// with the same empty-list contract as FindBookingsByCustomerID.
func (s *BookingService) FindBookingsByBrandID(brandID int64) ([]models.Booking, error) {
	const op = "service.FindBookingsByBrandID"

	bookings, err := s.storage.BookingsByBrandID(brandID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}
