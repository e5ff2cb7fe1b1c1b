package storage

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrBrandNotFound    = errors.New("brand not found")
	ErrBookingNotFound  = errors.New("booking not found")
)
