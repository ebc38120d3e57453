package models

import (
	"errors"
	"testing"
	"time"
)

func TestNewCustomer_Validation(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		custName  string
		licenseNo string
		wantErr   error
	}{
		{"valid", "cust-1", "Abena Mensah", "DL-559-20417", nil},
		{"empty id", "", "Abena Mensah", "DL-559-20417", ErrEmptyCustomerID},
		{"empty name", "cust-1", "", "DL-559-20417", ErrEmptyCustomerName},
		{"empty license", "cust-1", "Abena Mensah", "", ErrEmptyLicenseNo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomer(tt.id, tt.custName, tt.licenseNo)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got err %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCustomer_Contact(t *testing.T) {
	c := validCustomer(t, "cust-1")

	c.SetContact("email", "abena@example.com")
	c.SetContact("phone", "+233-24-555-0171")
	c.SetContact("email", "abena.mensah@example.com") // overwrite

	email, ok := c.Contact("email")
	if !ok || email != "abena.mensah@example.com" {
		t.Errorf("Contact(email) = %q, %v", email, ok)
	}
	if _, ok := c.Contact("fax"); ok {
		t.Error("absent contact kind should not be found")
	}

	// The returned map is a copy; mutating it must not touch the customer
	info := c.ContactInfo()
	info["email"] = "tampered"
	email, _ = c.Contact("email")
	if email != "abena.mensah@example.com" {
		t.Error("ContactInfo copy leaked internal state")
	}
}

func TestCustomer_RentalHistory(t *testing.T) {
	c := validCustomer(t, "cust-1")
	car := validCar(t)

	if len(c.RentalHistory()) != 0 {
		t.Fatal("new customer should have empty history")
	}

	b, err := NewBooking(car, c,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewBooking failed: %v", err)
	}

	c.AddBooking(b)
	c.AddBooking(nil) // ignored

	history := c.RentalHistory()
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if !history[0].Equal(b) {
		t.Error("history entry does not match stored booking")
	}

	// The returned slice is a copy
	history[0] = nil
	if c.RentalHistory()[0] == nil {
		t.Error("RentalHistory copy leaked internal state")
	}
}
