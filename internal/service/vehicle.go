// Package service provides thin façades over the repositories. Per the
// error-propagation contract, repository failures are logged here and
// reported to callers as soft booleans or absent values rather than
// propagated.
package service

import (
	log "github.com/sirupsen/logrus"

	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/models"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/repo"
)

// VehicleService fronts one vehicle repository (cars, motorcycles or
// trucks, depending on the repository it is built with).
type VehicleService struct {
	repo   repo.VehicleRepository
	logger *log.Logger
}

// NewVehicleService creates a vehicle service over the given repository.
func NewVehicleService(r repo.VehicleRepository, logger *log.Logger) *VehicleService {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &VehicleService{repo: r, logger: logger}
}

// AddVehicle stores a vehicle and reports success.
func (s *VehicleService) AddVehicle(v models.Vehicle) bool {
	if err := s.repo.Save(v); err != nil {
		s.logger.WithError(err).Error("failed to add vehicle")
		return false
	}
	return true
}

// UpdateVehicle replaces a stored vehicle and reports success.
func (s *VehicleService) UpdateVehicle(v models.Vehicle) bool {
	if err := s.repo.Update(v); err != nil {
		s.logger.WithError(err).Error("failed to update vehicle")
		return false
	}
	return true
}

// CancelVehicle removes a vehicle from the fleet and reports success.
func (s *VehicleService) CancelVehicle(vehicleID string) bool {
	if err := s.repo.Delete(vehicleID); err != nil {
		s.logger.WithError(err).WithField("vehicle_id", vehicleID).Error("failed to delete vehicle")
		return false
	}
	return true
}

// GetVehicleByID returns the vehicle and whether it was found.
func (s *VehicleService) GetVehicleByID(vehicleID string) (models.Vehicle, bool) {
	v, err := s.repo.GetByID(vehicleID)
	if err != nil {
		return nil, false
	}
	return v, true
}

// GetAllVehicles returns every vehicle in the repository.
func (s *VehicleService) GetAllVehicles() []models.Vehicle {
	return s.repo.GetAll()
}

// GetAvailableVehicles returns the vehicles currently marked available.
func (s *VehicleService) GetAvailableVehicles() []models.Vehicle {
	return s.repo.GetAvailable()
}
