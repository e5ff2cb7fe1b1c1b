package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/DechoChernev1/CustomerBookingService/internal/models"
	"github.com/DechoChernev1/CustomerBookingService/internal/storage"
)

// SaveCustomer inserts a new customer and fills in the generated id and the
// database-assigned timestamps.
func (s *Storage) SaveCustomer(c *models.Customer) error {
	const op = "storage.postgres.SaveCustomer"

	query := `
		INSERT INTO customers (name, email, age, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created, updated`

	err := s.DB.QueryRow(query, c.Name, c.Email, c.Age, c.Active).
		Scan(&c.ID, &c.Created, &c.Updated)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) CustomerByID(id int64) (*models.Customer, error) {
	const op = "storage.postgres.CustomerByID"

	query := `
		SELECT id, name, email, age, active, created, updated
		FROM customers
		WHERE id = $1`

	var c models.Customer
	err := s.DB.QueryRow(query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Age,
		&c.Active,
		&c.Created,
		&c.Updated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrCustomerNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &c, nil
}

func (s *Storage) AllCustomers() ([]models.Customer, error) {
	const op = "storage.postgres.AllCustomers"

	query := `
		SELECT id, name, email, age, active, created, updated
		FROM customers
		ORDER BY id`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		err = rows.Scan(&c.ID, &c.Name, &c.Email, &c.Age, &c.Active, &c.Created, &c.Updated)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return customers, nil
}

// UpdateCustomer writes the full current state of the customer back and
// refreshes the updated timestamp.
func (s *Storage) UpdateCustomer(c *models.Customer) error {
	const op = "storage.postgres.UpdateCustomer"

	query := `
		UPDATE customers
		SET name = $1, email = $2, age = $3, active = $4, updated = now()
		WHERE id = $5
		RETURNING updated`

	err := s.DB.QueryRow(query, c.Name, c.Email, c.Age, c.Active, c.ID).Scan(&c.Updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrCustomerNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteCustomer deletes unconditionally; removing a customer also removes
// its bookings through the ON DELETE CASCADE on bookings.customer_id.
func (s *Storage) DeleteCustomer(id int64) error {
	const op = "storage.postgres.DeleteCustomer"

	if _, err := s.DB.Exec(`DELETE FROM customers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) CustomerExists(id int64) (bool, error) {
	const op = "storage.postgres.CustomerExists"

	var exists bool
	err := s.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}
