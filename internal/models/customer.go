package models

import "errors"

var (
	ErrEmptyCustomerID   = errors.New("customer ID cannot be empty")
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
	ErrEmptyLicenseNo    = errors.New("license number cannot be empty")
)

// Customer is a renter. Identity fields are immutable; contact info and
// rental history grow over time.
type Customer struct {
	id          string
	name        string
	licenseNo   string
	contactInfo map[string]string
	history     []*Booking
}

// NewCustomer validates the identity fields and constructs a customer
// with empty contact info and history.
func NewCustomer(id, name, licenseNo string) (*Customer, error) {
	switch {
	case id == "":
		return nil, ErrEmptyCustomerID
	case name == "":
		return nil, ErrEmptyCustomerName
	case licenseNo == "":
		return nil, ErrEmptyLicenseNo
	}
	return &Customer{
		id:          id,
		name:        name,
		licenseNo:   licenseNo,
		contactInfo: make(map[string]string),
	}, nil
}

func (c *Customer) CustomerID() string    { return c.id }
func (c *Customer) CustomerName() string  { return c.name }
func (c *Customer) LicenseNumber() string { return c.licenseNo }

// SetContact records a contact entry (e.g. "email", "phone") for the
// customer, replacing any previous value for the same kind.
func (c *Customer) SetContact(kind, value string) {
	c.contactInfo[kind] = value
}

// Contact returns the contact entry for a kind, if present.
func (c *Customer) Contact(kind string) (string, bool) {
	v, ok := c.contactInfo[kind]
	return v, ok
}

// ContactInfo returns a copy of the customer's contact entries.
func (c *Customer) ContactInfo() map[string]string {
	out := make(map[string]string, len(c.contactInfo))
	for k, v := range c.contactInfo {
		out[k] = v
	}
	return out
}

// AddBooking appends a booking to the customer's rental history. History
// is append-only from the customer's perspective.
func (c *Customer) AddBooking(b *Booking) {
	if b != nil {
		c.history = append(c.history, b)
	}
}

// RentalHistory returns the customer's bookings in insertion order, as a
// copy.
func (c *Customer) RentalHistory() []*Booking {
	out := make([]*Booking, len(c.history))
	copy(out, c.history)
	return out
}
