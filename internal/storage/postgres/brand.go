package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/DechoChernev1/CustomerBookingService/internal/models"
	"github.com/DechoChernev1/CustomerBookingService/internal/storage"
)

func (s *Storage) SaveBrand(b *models.Brand) error {
	const op = "storage.postgres.SaveBrand"

	query := `
		INSERT INTO brands (name, address, short_code)
		VALUES ($1, $2, $3)
		RETURNING id`

	if err := s.DB.QueryRow(query, b.Name, b.Address, b.ShortCode).Scan(&b.ID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) BrandByID(id int64) (*models.Brand, error) {
	const op = "storage.postgres.BrandByID"

	query := `
		SELECT id, name, address, short_code
		FROM brands
		WHERE id = $1`

	var b models.Brand
	err := s.DB.QueryRow(query, id).Scan(&b.ID, &b.Name, &b.Address, &b.ShortCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrBrandNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &b, nil
}

func (s *Storage) AllBrands() ([]models.Brand, error) {
	const op = "storage.postgres.AllBrands"

	query := `
		SELECT id, name, address, short_code
		FROM brands
		ORDER BY id`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var brands []models.Brand
	for rows.Next() {
		var b models.Brand
		if err = rows.Scan(&b.ID, &b.Name, &b.Address, &b.ShortCode); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		brands = append(brands, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return brands, nil
}

func (s *Storage) UpdateBrand(b *models.Brand) error {
	const op = "storage.postgres.UpdateBrand"

	query := `
		UPDATE brands
		SET name = $1, address = $2, short_code = $3
		WHERE id = $4
		RETURNING id`

	var id int64
	err := s.DB.QueryRow(query, b.Name, b.Address, b.ShortCode, b.ID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrBrandNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteBrand deletes unconditionally. A brand still referenced by bookings
// cannot be deleted; the foreign key violation surfaces as a storage error.
func (s *Storage) DeleteBrand(id int64) error {
	const op = "storage.postgres.DeleteBrand"

	if _, err := s.DB.Exec(`DELETE FROM brands WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) BrandExists(id int64) (bool, error) {
	const op = "storage.postgres.BrandExists"

	var exists bool
	err := s.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM brands WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}
