package service

import (
	log "github.com/sirupsen/logrus"

	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/models"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/repo"
)

// CustomerService fronts the customer repository.
type CustomerService struct {
	repo   *repo.CustomerRepository
	logger *log.Logger
}

// NewCustomerService creates a customer service over the given repository.
func NewCustomerService(r *repo.CustomerRepository, logger *log.Logger) *CustomerService {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &CustomerService{repo: r, logger: logger}
}

// RegisterCustomer stores a new customer and reports success.
func (s *CustomerService) RegisterCustomer(c *models.Customer) bool {
	if err := s.repo.Save(c); err != nil {
		s.logger.WithError(err).Error("failed to register customer")
		return false
	}
	return true
}

// UpdateCustomer replaces an existing customer and reports success.
func (s *CustomerService) UpdateCustomer(c *models.Customer) bool {
	if err := s.repo.Update(c); err != nil {
		s.logger.WithError(err).Error("failed to update customer")
		return false
	}
	return true
}

// CancelCustomer removes a customer registration and reports success.
func (s *CustomerService) CancelCustomer(customerID string) bool {
	if err := s.repo.Delete(customerID); err != nil {
		s.logger.WithError(err).WithField("customer_id", customerID).Error("failed to delete customer")
		return false
	}
	return true
}

// GetCustomerByID returns the customer and whether it was found.
func (s *CustomerService) GetCustomerByID(customerID string) (*models.Customer, bool) {
	c, err := s.repo.FindByID(customerID)
	if err != nil {
		return nil, false
	}
	return c, true
}

// GetAllCustomers returns every registered customer.
func (s *CustomerService) GetAllCustomers() []*models.Customer {
	return s.repo.FindAll()
}

// AddBookingToHistory appends a booking to a customer's rental history
// and reports success.
func (s *CustomerService) AddBookingToHistory(customerID string, b *models.Booking) bool {
	if err := s.repo.AddBookingToHistory(customerID, b); err != nil {
		s.logger.WithError(err).WithField("customer_id", customerID).Error("failed to add booking to history")
		return false
	}
	return true
}

// GetCustomerBookings returns a customer's rental history, or nil when
// the customer does not exist.
func (s *CustomerService) GetCustomerBookings(customerID string) []*models.Booking {
	bookings, err := s.repo.Bookings(customerID)
	if err != nil {
		s.logger.WithError(err).WithField("customer_id", customerID).Error("failed to fetch customer bookings")
		return nil
	}
	return bookings
}
