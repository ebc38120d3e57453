package models

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyVehicleID     = errors.New("vehicle ID cannot be empty")
	ErrEmptyLicensePlate  = errors.New("license plate cannot be empty")
	ErrEmptyModel         = errors.New("model cannot be empty")
	ErrNilBrand           = errors.New("brand cannot be empty")
	ErrInvalidFuelType    = errors.New("fuel type is not valid")
	ErrNegativeRentalRate = errors.New("base rental rate cannot be negative")
	ErrSeatingCapacity    = errors.New("seating capacity must be between 2 and 9")
	ErrTransmissionType   = errors.New("transmission type must be Manual or Automatic")
	ErrTrunkCapacity      = errors.New("trunk capacity must be greater than 340 and at most 1500 litres")
	ErrCarMileage         = errors.New("mileage must be between 8.5 and 15 km/l")
	ErrInvalidEngineType  = errors.New("engine type is not valid")
	ErrMotorcycleMileage  = errors.New("mileage must be between 12.7 and 42 km/l")
	ErrCargoCapacity      = errors.New("cargo capacity must be between 550 and 3200 kilograms")
	ErrCargoBedSize       = errors.New("cargo bed size must be between 700 and 4000 litres")
	ErrAxleCount          = errors.New("axle count must be between 2 and 10")
	ErrInvalidCategory    = errors.New("vehicle category is not valid for this kind")
)

// Vehicle is the common contract of cars, motorcycles and trucks. Identity
// fields are immutable after construction; pricing rate and availability
// may change over the vehicle's lifetime.
type Vehicle interface {
	VehicleID() string
	LicensePlate() string
	Model() string
	Brand() *Brand
	FuelType() FuelType
	Kind() VehicleKind
	CategoryName() string
	BaseRentalRate() float64
	IsAvailable() bool
	SetAvailable(available bool)
	SetBaseRentalRate(rate float64) error
	Age() int
}

type vehicleBase struct {
	id        string
	plate     string
	model     string
	brand     *Brand
	fuel      FuelType
	rate      float64
	available bool
}

func newVehicleBase(id, plate, model string, brand *Brand, fuel FuelType, rate float64, available bool) (vehicleBase, error) {
	switch {
	case id == "":
		return vehicleBase{}, ErrEmptyVehicleID
	case plate == "":
		return vehicleBase{}, ErrEmptyLicensePlate
	case model == "":
		return vehicleBase{}, ErrEmptyModel
	case brand == nil || brand.Name == "":
		return vehicleBase{}, ErrNilBrand
	case !IsValidFuelType(fuel):
		return vehicleBase{}, ErrInvalidFuelType
	case rate < 0:
		return vehicleBase{}, ErrNegativeRentalRate
	}
	return vehicleBase{
		id:        id,
		plate:     plate,
		model:     model,
		brand:     brand,
		fuel:      fuel,
		rate:      rate,
		available: available,
	}, nil
}

func (v *vehicleBase) VehicleID() string       { return v.id }
func (v *vehicleBase) LicensePlate() string    { return v.plate }
func (v *vehicleBase) Model() string           { return v.model }
func (v *vehicleBase) Brand() *Brand           { return v.brand }
func (v *vehicleBase) FuelType() FuelType      { return v.fuel }
func (v *vehicleBase) BaseRentalRate() float64 { return v.rate }
func (v *vehicleBase) IsAvailable() bool       { return v.available }

func (v *vehicleBase) SetAvailable(available bool) { v.available = available }

func (v *vehicleBase) SetBaseRentalRate(rate float64) error {
	if rate < 0 {
		return ErrNegativeRentalRate
	}
	v.rate = rate
	return nil
}

// Age is the number of calendar years since the brand was founded. It is
// not clamped; brands founded in the future yield a negative age.
func (v *vehicleBase) Age() int {
	return time.Now().Year() - v.brand.Year
}

// Car is a rental car with seating, transmission, trunk and mileage
// attributes validated against the ranges of the car taxonomy.
type Car struct {
	vehicleBase
	category     CarCategory
	seats        int
	transmission string
	trunk        float64
	mileage      float64
}

// NewCar validates every attribute and constructs a car. Construction
// either succeeds completely or returns the first validation error; a car
// is never partially constructed.
func NewCar(id, plate, model string, brand *Brand, fuel FuelType, category CarCategory,
	rate float64, available bool, seats int, transmission string, trunk, mileage float64) (*Car, error) {
	base, err := newVehicleBase(id, plate, model, brand, fuel, rate, available)
	if err != nil {
		return nil, err
	}
	if !IsValidCarCategory(category) {
		return nil, ErrInvalidCategory
	}
	if seats < 2 || seats > 9 {
		return nil, ErrSeatingCapacity
	}
	if !validTransmission(transmission) {
		return nil, ErrTransmissionType
	}
	if trunk <= 340 || trunk > 1500 {
		return nil, ErrTrunkCapacity
	}
	if mileage < 8.5 || mileage > 15 {
		return nil, ErrCarMileage
	}
	return &Car{
		vehicleBase:  base,
		category:     category,
		seats:        seats,
		transmission: transmission,
		trunk:        trunk,
		mileage:      mileage,
	}, nil
}

func (c *Car) Kind() VehicleKind        { return KindCar }
func (c *Car) CategoryName() string     { return string(c.category) }
func (c *Car) Category() CarCategory    { return c.category }
func (c *Car) SeatingCapacity() int     { return c.seats }
func (c *Car) TransmissionType() string { return c.transmission }
func (c *Car) TrunkCapacity() float64   { return c.trunk }
func (c *Car) Mileage() float64         { return c.mileage }

func (c *Car) SetCategory(category CarCategory) error {
	if !IsValidCarCategory(category) {
		return ErrInvalidCategory
	}
	c.category = category
	return nil
}

func (c *Car) SetSeatingCapacity(seats int) error {
	if seats < 2 || seats > 9 {
		return ErrSeatingCapacity
	}
	c.seats = seats
	return nil
}

func (c *Car) SetTransmissionType(transmission string) error {
	if !validTransmission(transmission) {
		return ErrTransmissionType
	}
	c.transmission = transmission
	return nil
}

func (c *Car) SetTrunkCapacity(trunk float64) error {
	if trunk <= 340 || trunk > 1500 {
		return ErrTrunkCapacity
	}
	c.trunk = trunk
	return nil
}

func (c *Car) SetMileage(mileage float64) error {
	if mileage < 8.5 || mileage > 15 {
		return ErrCarMileage
	}
	c.mileage = mileage
	return nil
}

func validTransmission(transmission string) bool {
	return strings.EqualFold(transmission, "Manual") || strings.EqualFold(transmission, "Automatic")
}

// Motorcycle is a rental motorcycle with an engine type and a mileage
// range of its own.
type Motorcycle struct {
	vehicleBase
	category MotorcycleCategory
	engine   EngineType
	mileage  float64
}

// NewMotorcycle validates every attribute and constructs a motorcycle.
func NewMotorcycle(id, plate, model string, brand *Brand, fuel FuelType, category MotorcycleCategory,
	rate float64, available bool, engine EngineType, mileage float64) (*Motorcycle, error) {
	base, err := newVehicleBase(id, plate, model, brand, fuel, rate, available)
	if err != nil {
		return nil, err
	}
	if !IsValidMotorcycleCategory(category) {
		return nil, ErrInvalidCategory
	}
	if !IsValidEngineType(engine) {
		return nil, ErrInvalidEngineType
	}
	if mileage < 12.7 || mileage > 42 {
		return nil, ErrMotorcycleMileage
	}
	return &Motorcycle{
		vehicleBase: base,
		category:    category,
		engine:      engine,
		mileage:     mileage,
	}, nil
}

func (m *Motorcycle) Kind() VehicleKind            { return KindMotorcycle }
func (m *Motorcycle) CategoryName() string         { return string(m.category) }
func (m *Motorcycle) Category() MotorcycleCategory { return m.category }
func (m *Motorcycle) EngineType() EngineType       { return m.engine }
func (m *Motorcycle) Mileage() float64             { return m.mileage }

func (m *Motorcycle) SetCategory(category MotorcycleCategory) error {
	if !IsValidMotorcycleCategory(category) {
		return ErrInvalidCategory
	}
	m.category = category
	return nil
}

func (m *Motorcycle) SetEngineType(engine EngineType) error {
	if !IsValidEngineType(engine) {
		return ErrInvalidEngineType
	}
	m.engine = engine
	return nil
}

func (m *Motorcycle) SetMileage(mileage float64) error {
	if mileage < 12.7 || mileage > 42 {
		return ErrMotorcycleMileage
	}
	m.mileage = mileage
	return nil
}

// Truck is a rental truck with cargo and axle attributes.
type Truck struct {
	vehicleBase
	category TruckCategory
	cargo    float64
	bedSize  float64
	axles    int
}

// NewTruck validates every attribute and constructs a truck.
func NewTruck(id, plate, model string, brand *Brand, fuel FuelType, category TruckCategory,
	rate float64, available bool, cargo, bedSize float64, axles int) (*Truck, error) {
	base, err := newVehicleBase(id, plate, model, brand, fuel, rate, available)
	if err != nil {
		return nil, err
	}
	if !IsValidTruckCategory(category) {
		return nil, ErrInvalidCategory
	}
	if cargo < 550 || cargo > 3200 {
		return nil, ErrCargoCapacity
	}
	if bedSize < 700 || bedSize > 4000 {
		return nil, ErrCargoBedSize
	}
	if axles < 2 || axles > 10 {
		return nil, ErrAxleCount
	}
	return &Truck{
		vehicleBase: base,
		category:    category,
		cargo:       cargo,
		bedSize:     bedSize,
		axles:       axles,
	}, nil
}

func (t *Truck) Kind() VehicleKind       { return KindTruck }
func (t *Truck) CategoryName() string    { return string(t.category) }
func (t *Truck) Category() TruckCategory { return t.category }
func (t *Truck) CargoCapacity() float64  { return t.cargo }
func (t *Truck) CargoBedSize() float64   { return t.bedSize }
func (t *Truck) AxleCount() int          { return t.axles }

func (t *Truck) SetCategory(category TruckCategory) error {
	if !IsValidTruckCategory(category) {
		return ErrInvalidCategory
	}
	t.category = category
	return nil
}

func (t *Truck) SetCargoCapacity(cargo float64) error {
	if cargo < 550 || cargo > 3200 {
		return ErrCargoCapacity
	}
	t.cargo = cargo
	return nil
}

func (t *Truck) SetCargoBedSize(bedSize float64) error {
	if bedSize < 700 || bedSize > 4000 {
		return ErrCargoBedSize
	}
	t.bedSize = bedSize
	return nil
}

func (t *Truck) SetAxleCount(axles int) error {
	if axles < 2 || axles > 10 {
		return ErrAxleCount
	}
	t.axles = axles
	return nil
}
