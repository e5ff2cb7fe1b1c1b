package models

import "time"

type Customer struct {
	ID       int64     `json:"id,omitempty" validate:"omitempty,gt=0"`
	Name     string    `json:"name,omitempty" validate:"omitempty,min=3,max=50"`
	Age      int       `json:"age" validate:"min=18,max=100"`
	Email    string    `json:"email,omitempty" validate:"omitempty,email"`
	Active   bool      `json:"active"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
	Bookings []Booking `json:"bookings,omitempty" validate:"-"`
}
