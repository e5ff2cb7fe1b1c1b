package models

import "time"

// Booking is owned by at most one customer and may reference one brand.
// The nested objects are resolved by identifier when a booking is written;
// their remaining fields are only populated on reads.
type Booking struct {
	ID          int64     `json:"id,omitempty" validate:"omitempty,gt=0"`
	Title       string    `json:"title,omitempty" validate:"omitempty,min=3,max=100"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
	StartDate   *Date     `json:"startDate,omitempty"`
	EndDate     *Date     `json:"endDate,omitempty"`
	Brand       *Brand    `json:"brand,omitempty" validate:"-"`
	Customer    *Customer `json:"customer,omitempty" validate:"-"`
}
