package service

import (
	"fmt"
	"log/slog"

	"github.com/DechoChernev1/CustomerBookingService/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CustomerStorage
type CustomerStorage interface {
	SaveCustomer(c *models.Customer) error
	CustomerByID(id int64) (*models.Customer, error)
	AllCustomers() ([]models.Customer, error)
	UpdateCustomer(c *models.Customer) error
	DeleteCustomer(id int64) error
	CustomerExists(id int64) (bool, error)
}

type CustomerService struct {
	log     *slog.Logger
	storage CustomerStorage
}

func NewCustomerService(log *slog.Logger, storage CustomerStorage) *CustomerService {
	return &CustomerService{
		log:     log,
		storage: storage,
	}
}

func (s *CustomerService) FindAllCustomers() ([]models.Customer, error) {
	const op = "service.FindAllCustomers"

	customers, err := s.storage.AllCustomers()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return customers, nil
}

func (s *CustomerService) FindCustomerByID(id int64) (*models.Customer, error) {
	const op = "service.FindCustomerByID"

	customer, err := s.storage.CustomerByID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return customer, nil
}

// SaveCustomer creates a new customer from the supplied fields. Any id on
// the input is ignored; the identifier is assigned by storage.
func (s *CustomerService) SaveCustomer(details *models.Customer) (*models.Customer, error) {
	const op = "service.SaveCustomer"

	customer := &models.Customer{
		Name:   details.Name,
		Email:  details.Email,
		Age:    details.Age,
		Active: details.Active,
	}

	if err := s.storage.SaveCustomer(customer); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("customer saved", slog.Int64("id", customer.ID))

	return customer, nil
}

// UpdateCustomer loads the stored customer and overwrites exactly name,
// email, active and age from the input before persisting. Other input
// fields are never copied.
func (s *CustomerService) UpdateCustomer(id int64, details *models.Customer) (*models.Customer, error) {
	const op = "service.UpdateCustomer"

	customer, err := s.storage.CustomerByID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	customer.Name = details.Name
	customer.Email = details.Email
	customer.Active = details.Active
	customer.Age = details.Age

	if err = s.storage.UpdateCustomer(customer); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("customer updated", slog.Int64("id", id))

	return customer, nil
}

// DeleteCustomer deletes unconditionally and reports success as the record
// being absent afterwards, so deleting an id that never existed still
// reports true.
func (s *CustomerService) DeleteCustomer(id int64) (bool, error) {
	const op = "service.DeleteCustomer"

	if err := s.storage.DeleteCustomer(id); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := s.storage.CustomerExists(id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("customer deleted", slog.Int64("id", id), slog.Bool("deleted", !exists))

	return !exists, nil
}
