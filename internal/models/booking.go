package models

import (
	"errors"
	"time"
)

var (
	ErrIncompleteBooking  = errors.New("booking details cannot be empty")
	ErrReturnBeforeRental = errors.New("return date cannot be before rental date")
)

// Booking links a vehicle and a customer over a rental period. Bookings
// have no surrogate key; their identity is the vehicle+customer+dates
// tuple, which is why they are immutable after construction.
type Booking struct {
	vehicle    Vehicle
	customer   *Customer
	rentalDate time.Time
	returnDate time.Time
}

// NewBooking validates that every field is present and that the return
// date does not precede the rental date.
func NewBooking(vehicle Vehicle, customer *Customer, rentalDate, returnDate time.Time) (*Booking, error) {
	if vehicle == nil || customer == nil || rentalDate.IsZero() || returnDate.IsZero() {
		return nil, ErrIncompleteBooking
	}
	if returnDate.Before(rentalDate) {
		return nil, ErrReturnBeforeRental
	}
	return &Booking{
		vehicle:    vehicle,
		customer:   customer,
		rentalDate: rentalDate,
		returnDate: returnDate,
	}, nil
}

func (b *Booking) Vehicle() Vehicle       { return b.vehicle }
func (b *Booking) Customer() *Customer    { return b.customer }
func (b *Booking) RentalDate() time.Time  { return b.rentalDate }
func (b *Booking) ReturnDate() time.Time  { return b.returnDate }

// Duration returns the number of whole days between the rental and return
// dates. A same-day return yields 0.
func (b *Booking) Duration() int {
	return int(b.returnDate.Sub(b.rentalDate).Hours() / 24)
}

// Equal reports whether two bookings share the same identity: same
// vehicle, same customer and the same rental period.
func (b *Booking) Equal(other *Booking) bool {
	if other == nil {
		return false
	}
	return b.vehicle.VehicleID() == other.vehicle.VehicleID() &&
		b.customer.CustomerID() == other.customer.CustomerID() &&
		b.rentalDate.Equal(other.rentalDate) &&
		b.returnDate.Equal(other.returnDate)
}
