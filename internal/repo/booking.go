package repo

import (
	"sync"

	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/models"
)

// BookingRepository stores bookings in memory. Bookings carry no
// surrogate key; update and cancel match on the booking's structural
// identity (vehicle + customer + dates).
type BookingRepository struct {
	mu       sync.RWMutex
	bookings []*models.Booking
}

// NewBookingRepository creates an empty booking repository.
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// Save stores a booking.
func (r *BookingRepository) Save(b *models.Booking) error {
	if b == nil {
		return ErrNilEntity
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, b)
	return nil
}

// Update replaces the stored booking with the same identity.
func (r *BookingRepository) Update(b *models.Booking) error {
	if b == nil {
		return ErrNilEntity
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.bookings {
		if existing.Equal(b) {
			r.bookings[i] = b
			return nil
		}
	}
	return ErrNotFound
}

// Cancel removes the first booking linking the given vehicle and
// customer.
func (r *BookingRepository) Cancel(vehicleID, customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.bookings {
		if b.Vehicle().VehicleID() == vehicleID && b.Customer().CustomerID() == customerID {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// GetByVehicleAndCustomer returns the first booking linking the given
// vehicle and customer.
func (r *BookingRepository) GetByVehicleAndCustomer(vehicleID, customerID string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.Vehicle().VehicleID() == vehicleID && b.Customer().CustomerID() == customerID {
			return b, nil
		}
	}
	return nil, ErrNotFound
}

// GetAll returns every stored booking as a copy of the collection.
func (r *BookingRepository) GetAll() []*models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

// ByVehicle returns all bookings for a vehicle.
func (r *BookingRepository) ByVehicle(vehicleID string) []*models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Booking
	for _, b := range r.bookings {
		if b.Vehicle().VehicleID() == vehicleID {
			out = append(out, b)
		}
	}
	return out
}

// ByCustomer returns all bookings made by a customer.
func (r *BookingRepository) ByCustomer(customerID string) []*models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Booking
	for _, b := range r.bookings {
		if b.Customer().CustomerID() == customerID {
			out = append(out, b)
		}
	}
	return out
}

// Exists reports whether any booking links the given vehicle and
// customer.
func (r *BookingRepository) Exists(vehicleID, customerID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.Vehicle().VehicleID() == vehicleID && b.Customer().CustomerID() == customerID {
			return true
		}
	}
	return false
}
