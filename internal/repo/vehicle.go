package repo

import (
	"strings"
	"sync"

	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/models"
)

// VehicleRepository is the contract shared by the car, motorcycle and
// truck repositories. Save and Update reject vehicles of the wrong kind
// with ErrWrongKind; lookups of absent IDs yield ErrNotFound.
type VehicleRepository interface {
	Save(v models.Vehicle) error
	Update(v models.Vehicle) error
	Delete(vehicleID string) error
	GetByID(vehicleID string) (models.Vehicle, error)
	GetAll() []models.Vehicle
	GetAvailable() []models.Vehicle
}

// CarRepository stores cars in memory.
type CarRepository struct {
	mu   sync.RWMutex
	cars []*models.Car
}

// NewCarRepository creates an empty car repository.
func NewCarRepository() *CarRepository {
	return &CarRepository{}
}

func (r *CarRepository) Save(v models.Vehicle) error {
	if v == nil {
		return ErrNilEntity
	}
	car, ok := v.(*models.Car)
	if !ok {
		return ErrWrongKind
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cars = append(r.cars, car)
	return nil
}

func (r *CarRepository) Update(v models.Vehicle) error {
	if v == nil {
		return ErrNilEntity
	}
	car, ok := v.(*models.Car)
	if !ok {
		return ErrWrongKind
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.cars {
		if existing.VehicleID() == car.VehicleID() {
			r.cars[i] = car
			return nil
		}
	}
	return ErrNotFound
}

func (r *CarRepository) Delete(vehicleID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, car := range r.cars {
		if car.VehicleID() == vehicleID {
			r.cars = append(r.cars[:i], r.cars[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *CarRepository) GetByID(vehicleID string) (models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, car := range r.cars {
		if car.VehicleID() == vehicleID {
			return car, nil
		}
	}
	return nil, ErrNotFound
}

// GetAll returns every stored car as a defensive copy of the collection.
func (r *CarRepository) GetAll() []models.Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Vehicle, 0, len(r.cars))
	for _, car := range r.cars {
		out = append(out, car)
	}
	return out
}

func (r *CarRepository) GetAvailable() []models.Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Vehicle
	for _, car := range r.cars {
		if car.IsAvailable() {
			out = append(out, car)
		}
	}
	return out
}

// FindBySeatingCapacity returns cars with exactly the given seat count.
func (r *CarRepository) FindBySeatingCapacity(seats int) []*models.Car {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Car
	for _, car := range r.cars {
		if car.SeatingCapacity() == seats {
			out = append(out, car)
		}
	}
	return out
}

// FindByTrunkCapacityRange returns cars whose trunk capacity falls within
// [min, max] litres.
func (r *CarRepository) FindByTrunkCapacityRange(min, max float64) []*models.Car {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Car
	for _, car := range r.cars {
		if capacity := car.TrunkCapacity(); capacity >= min && capacity <= max {
			out = append(out, car)
		}
	}
	return out
}

// FindByTransmissionType matches the transmission type case-insensitively.
func (r *CarRepository) FindByTransmissionType(transmission string) []*models.Car {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Car
	for _, car := range r.cars {
		if strings.EqualFold(car.TransmissionType(), transmission) {
			out = append(out, car)
		}
	}
	return out
}

// MotorcycleRepository stores motorcycles in memory.
type MotorcycleRepository struct {
	mu          sync.RWMutex
	motorcycles []*models.Motorcycle
}

// NewMotorcycleRepository creates an empty motorcycle repository.
func NewMotorcycleRepository() *MotorcycleRepository {
	return &MotorcycleRepository{}
}

func (r *MotorcycleRepository) Save(v models.Vehicle) error {
	if v == nil {
		return ErrNilEntity
	}
	motorcycle, ok := v.(*models.Motorcycle)
	if !ok {
		return ErrWrongKind
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.motorcycles = append(r.motorcycles, motorcycle)
	return nil
}

func (r *MotorcycleRepository) Update(v models.Vehicle) error {
	if v == nil {
		return ErrNilEntity
	}
	motorcycle, ok := v.(*models.Motorcycle)
	if !ok {
		return ErrWrongKind
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.motorcycles {
		if existing.VehicleID() == motorcycle.VehicleID() {
			r.motorcycles[i] = motorcycle
			return nil
		}
	}
	return ErrNotFound
}

func (r *MotorcycleRepository) Delete(vehicleID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, motorcycle := range r.motorcycles {
		if motorcycle.VehicleID() == vehicleID {
			r.motorcycles = append(r.motorcycles[:i], r.motorcycles[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MotorcycleRepository) GetByID(vehicleID string) (models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, motorcycle := range r.motorcycles {
		if motorcycle.VehicleID() == vehicleID {
			return motorcycle, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MotorcycleRepository) GetAll() []models.Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Vehicle, 0, len(r.motorcycles))
	for _, motorcycle := range r.motorcycles {
		out = append(out, motorcycle)
	}
	return out
}

func (r *MotorcycleRepository) GetAvailable() []models.Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Vehicle
	for _, motorcycle := range r.motorcycles {
		if motorcycle.IsAvailable() {
			out = append(out, motorcycle)
		}
	}
	return out
}

// FindByEngineType matches the engine type case-insensitively.
func (r *MotorcycleRepository) FindByEngineType(engine string) []*models.Motorcycle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Motorcycle
	for _, motorcycle := range r.motorcycles {
		if strings.EqualFold(string(motorcycle.EngineType()), engine) {
			out = append(out, motorcycle)
		}
	}
	return out
}

// FindByMileageRange returns motorcycles whose mileage falls within
// [min, max] km/l.
func (r *MotorcycleRepository) FindByMileageRange(min, max float64) []*models.Motorcycle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Motorcycle
	for _, motorcycle := range r.motorcycles {
		if mileage := motorcycle.Mileage(); mileage >= min && mileage <= max {
			out = append(out, motorcycle)
		}
	}
	return out
}

// TruckRepository stores trucks in memory.
type TruckRepository struct {
	mu     sync.RWMutex
	trucks []*models.Truck
}

// NewTruckRepository creates an empty truck repository.
func NewTruckRepository() *TruckRepository {
	return &TruckRepository{}
}

func (r *TruckRepository) Save(v models.Vehicle) error {
	if v == nil {
		return ErrNilEntity
	}
	truck, ok := v.(*models.Truck)
	if !ok {
		return ErrWrongKind
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trucks = append(r.trucks, truck)
	return nil
}

func (r *TruckRepository) Update(v models.Vehicle) error {
	if v == nil {
		return ErrNilEntity
	}
	truck, ok := v.(*models.Truck)
	if !ok {
		return ErrWrongKind
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.trucks {
		if existing.VehicleID() == truck.VehicleID() {
			r.trucks[i] = truck
			return nil
		}
	}
	return ErrNotFound
}

func (r *TruckRepository) Delete(vehicleID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, truck := range r.trucks {
		if truck.VehicleID() == vehicleID {
			r.trucks = append(r.trucks[:i], r.trucks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *TruckRepository) GetByID(vehicleID string) (models.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, truck := range r.trucks {
		if truck.VehicleID() == vehicleID {
			return truck, nil
		}
	}
	return nil, ErrNotFound
}

func (r *TruckRepository) GetAll() []models.Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Vehicle, 0, len(r.trucks))
	for _, truck := range r.trucks {
		out = append(out, truck)
	}
	return out
}

func (r *TruckRepository) GetAvailable() []models.Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Vehicle
	for _, truck := range r.trucks {
		if truck.IsAvailable() {
			out = append(out, truck)
		}
	}
	return out
}

// FindByCargoCapacity returns trucks with exactly the given cargo
// capacity in kilograms.
func (r *TruckRepository) FindByCargoCapacity(cargo float64) []*models.Truck {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Truck
	for _, truck := range r.trucks {
		if truck.CargoCapacity() == cargo {
			out = append(out, truck)
		}
	}
	return out
}

// FindByCargoBedSizeRange returns trucks whose cargo bed size falls
// within [min, max] litres.
func (r *TruckRepository) FindByCargoBedSizeRange(min, max float64) []*models.Truck {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Truck
	for _, truck := range r.trucks {
		if size := truck.CargoBedSize(); size >= min && size <= max {
			out = append(out, truck)
		}
	}
	return out
}

// FindByAxleCount returns trucks with exactly the given axle count.
func (r *TruckRepository) FindByAxleCount(axles int) []*models.Truck {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Truck
	for _, truck := range r.trucks {
		if truck.AxleCount() == axles {
			out = append(out, truck)
		}
	}
	return out
}
