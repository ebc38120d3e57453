package repo

import (
	"fmt"
	"sync"

	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/models"
)

// CustomerRepository stores customers keyed by ID. Unlike the vehicle
// repositories it enforces ID uniqueness on save and existence on update
// and delete.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*models.Customer
}

// NewCustomerRepository creates an empty customer repository.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{customers: make(map[string]*models.Customer)}
}

// Save registers a new customer. Saving an ID that is already present
// fails with ErrDuplicateID.
func (r *CustomerRepository) Save(c *models.Customer) error {
	if c == nil {
		return ErrNilEntity
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.customers[c.CustomerID()]; exists {
		return fmt.Errorf("%w: customer %s", ErrDuplicateID, c.CustomerID())
	}
	r.customers[c.CustomerID()] = c
	return nil
}

// Update replaces an existing customer. Updating an absent ID fails with
// ErrNotFound.
func (r *CustomerRepository) Update(c *models.Customer) error {
	if c == nil {
		return ErrNilEntity
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.customers[c.CustomerID()]; !exists {
		return fmt.Errorf("%w: customer %s", ErrNotFound, c.CustomerID())
	}
	r.customers[c.CustomerID()] = c
	return nil
}

// Delete removes a customer. Deleting an absent ID fails with ErrNotFound.
func (r *CustomerRepository) Delete(customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.customers[customerID]; !exists {
		return fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}
	delete(r.customers, customerID)
	return nil
}

// FindByID looks up a customer by ID.
func (r *CustomerRepository) FindByID(customerID string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[customerID]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// FindAll returns every stored customer as a copy of the collection.
func (r *CustomerRepository) FindAll() []*models.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out
}

// AddBookingToHistory appends a booking to a customer's rental history.
func (r *CustomerRepository) AddBookingToHistory(customerID string, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[customerID]
	if !ok {
		return fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}
	c.AddBooking(b)
	return nil
}

// Bookings returns a customer's rental history.
func (r *CustomerRepository) Bookings(customerID string) ([]*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[customerID]
	if !ok {
		return nil, fmt.Errorf("%w: customer %s", ErrNotFound, customerID)
	}
	return c.RentalHistory(), nil
}
