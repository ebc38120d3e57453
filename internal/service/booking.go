package service

import (
	log "github.com/sirupsen/logrus"

	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/models"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/pricing"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/repo"
)

// BookingService fronts the booking repository and exposes rental cost
// quoting.
type BookingService struct {
	repo   *repo.BookingRepository
	logger *log.Logger
}

// NewBookingService creates a booking service over the given repository.
func NewBookingService(r *repo.BookingRepository, logger *log.Logger) *BookingService {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &BookingService{repo: r, logger: logger}
}

// SaveBooking stores a booking and reports success.
func (s *BookingService) SaveBooking(b *models.Booking) bool {
	if err := s.repo.Save(b); err != nil {
		s.logger.WithError(err).Error("failed to save booking")
		return false
	}
	return true
}

// UpdateBooking replaces a stored booking and reports success.
func (s *BookingService) UpdateBooking(b *models.Booking) bool {
	if err := s.repo.Update(b); err != nil {
		s.logger.WithError(err).Error("failed to update booking")
		return false
	}
	return true
}

// CancelBooking removes the booking linking a vehicle and a customer and
// reports success.
func (s *BookingService) CancelBooking(vehicleID, customerID string) bool {
	if err := s.repo.Cancel(vehicleID, customerID); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"vehicle_id":  vehicleID,
			"customer_id": customerID,
		}).Error("failed to cancel booking")
		return false
	}
	return true
}

// GetBookingByVehicleAndCustomer returns the booking and whether it was
// found.
func (s *BookingService) GetBookingByVehicleAndCustomer(vehicleID, customerID string) (*models.Booking, bool) {
	b, err := s.repo.GetByVehicleAndCustomer(vehicleID, customerID)
	if err != nil {
		return nil, false
	}
	return b, true
}

// GetAllBookings returns every stored booking.
func (s *BookingService) GetAllBookings() []*models.Booking {
	return s.repo.GetAll()
}

// GetBookingsByVehicle returns all bookings for a vehicle.
func (s *BookingService) GetBookingsByVehicle(vehicleID string) []*models.Booking {
	return s.repo.ByVehicle(vehicleID)
}

// GetBookingsByCustomer returns all bookings made by a customer.
func (s *BookingService) GetBookingsByCustomer(customerID string) []*models.Booking {
	return s.repo.ByCustomer(customerID)
}

// BookingExists reports whether any booking links the vehicle and
// customer.
func (s *BookingService) BookingExists(vehicleID, customerID string) bool {
	return s.repo.Exists(vehicleID, customerID)
}

// Quote prices a booking with the calculator matching the vehicle's
// kind, including the calendar-based dynamic pricing factor.
func (s *BookingService) Quote(b *models.Booking) float64 {
	return pricing.ForVehicle(b.Vehicle()).Quote(b)
}
