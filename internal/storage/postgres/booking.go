package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/DechoChernev1/CustomerBookingService/internal/models"
	"github.com/DechoChernev1/CustomerBookingService/internal/storage"
)

const bookingColumns = `
	b.id, b.title, b.description, b.active, b.created, b.updated, b.start_date, b.end_date,
	c.id, c.name, c.email, c.age, c.active, c.created, c.updated,
	br.id, br.name, br.address, br.short_code`

const bookingJoins = `
	FROM bookings b
	LEFT JOIN customers c ON c.id = b.customer_id
	LEFT JOIN brands br ON br.id = b.brand_id`

// SaveBooking inserts a new booking. Customer and brand references are
// written by identifier only; the referenced rows are never created here,
// so an unknown identifier fails on the foreign key.
func (s *Storage) SaveBooking(b *models.Booking) error {
	const op = "storage.postgres.SaveBooking"

	query := `
		INSERT INTO bookings (title, description, active, start_date, end_date, customer_id, brand_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created, updated`

	err := s.DB.QueryRow(query,
		b.Title,
		b.Description,
		b.Active,
		nullDate(b.StartDate),
		nullDate(b.EndDate),
		customerRef(b),
		brandRef(b),
	).Scan(&b.ID, &b.Created, &b.Updated)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) BookingByID(id int64) (*models.Booking, error) {
	const op = "storage.postgres.BookingByID"

	query := `SELECT` + bookingColumns + bookingJoins + `
	WHERE b.id = $1`

	b, err := scanBooking(s.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (s *Storage) AllBookings() ([]models.Booking, error) {
	const op = "storage.postgres.AllBookings"

	query := `SELECT` + bookingColumns + bookingJoins + `
	ORDER BY b.id`

	return s.queryBookings(op, query)
}

func (s *Storage) BookingsByCustomerID(customerID int64) ([]models.Booking, error) {
	const op = "storage.postgres.BookingsByCustomerID"

	query := `SELECT` + bookingColumns + bookingJoins + `
	WHERE b.customer_id = $1
	ORDER BY b.id`

	return s.queryBookings(op, query, customerID)
}

func (s *Storage) BookingsByBrandID(brandID int64) ([]models.Booking, error) {
	const op = "storage.postgres.BookingsByBrandID"

	query := `SELECT` + bookingColumns + bookingJoins + `
	WHERE b.brand_id = $1
	ORDER BY b.id`

	return s.queryBookings(op, query, brandID)
}

// UpdateBooking writes the booking's full current state back. The customer
// reference is deliberately not part of the SET list: updates never re-own
// a booking.
func (s *Storage) UpdateBooking(b *models.Booking) error {
	const op = "storage.postgres.UpdateBooking"

	query := `
		UPDATE bookings
		SET title = $1, description = $2, active = $3, start_date = $4, end_date = $5,
		    brand_id = $6, updated = now()
		WHERE id = $7
		RETURNING updated`

	err := s.DB.QueryRow(query,
		b.Title,
		b.Description,
		b.Active,
		nullDate(b.StartDate),
		nullDate(b.EndDate),
		brandRef(b),
		b.ID,
	).Scan(&b.Updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteBooking(id int64) error {
	const op = "storage.postgres.DeleteBooking"

	if _, err := s.DB.Exec(`DELETE FROM bookings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) BookingExists(id int64) (bool, error) {
	const op = "storage.postgres.BookingExists"

	var exists bool
	err := s.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM bookings WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (s *Storage) queryBookings(op, query string, args ...any) ([]models.Booking, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		bookings = append(bookings, *b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*models.Booking, error) {
	var b models.Booking
	var startDate, endDate sql.NullTime
	var custID, custAge sql.NullInt64
	var custName, custEmail sql.NullString
	var custActive sql.NullBool
	var custCreated, custUpd sql.NullTime
	var brandID sql.NullInt64
	var brandName, brandAddr, brandCode sql.NullString

	err := row.Scan(
		&b.ID, &b.Title, &b.Description, &b.Active, &b.Created, &b.Updated, &startDate, &endDate,
		&custID, &custName, &custEmail, &custAge, &custActive, &custCreated, &custUpd,
		&brandID, &brandName, &brandAddr, &brandCode,
	)
	if err != nil {
		return nil, err
	}

	if startDate.Valid {
		b.StartDate = &models.Date{Time: startDate.Time}
	}
	if endDate.Valid {
		b.EndDate = &models.Date{Time: endDate.Time}
	}

	if custID.Valid {
		b.Customer = &models.Customer{
			ID:      custID.Int64,
			Name:    custName.String,
			Email:   custEmail.String,
			Age:     int(custAge.Int64),
			Active:  custActive.Bool,
			Created: custCreated.Time,
			Updated: custUpd.Time,
		}
	}

	if brandID.Valid {
		b.Brand = &models.Brand{
			ID:        brandID.Int64,
			Name:      brandName.String,
			Address:   brandAddr.String,
			ShortCode: brandCode.String,
		}
	}

	return &b, nil
}

func nullDate(d *models.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

func customerRef(b *models.Booking) any {
	if b.Customer == nil {
		return nil
	}
	return b.Customer.ID
}

func brandRef(b *models.Booking) any {
	if b.Brand == nil {
		return nil
	}
	return b.Brand.ID
}
