package models

// VehicleKind identifies which branch of the vehicle taxonomy an entity
// belongs to. It decides the category enumeration that applies and which
// rental cost calculator is used.
type VehicleKind string

const (
	KindCar        VehicleKind = "car"
	KindMotorcycle VehicleKind = "motorcycle"
	KindTruck      VehicleKind = "truck"
)

// IsValidKind checks if a vehicle kind is one of the three supported kinds.
func IsValidKind(kind VehicleKind) bool {
	switch kind {
	case KindCar, KindMotorcycle, KindTruck:
		return true
	default:
		return false
	}
}

// CarCategory is the closed category set for cars.
type CarCategory string

const (
	CarConvertible CarCategory = "CONVERTIBLE"
	CarHatchback   CarCategory = "HATCHBACK"
	CarSedan       CarCategory = "SEDAN"
	CarSUV         CarCategory = "SUV"
)

// IsValidCarCategory checks if a car category is valid.
func IsValidCarCategory(c CarCategory) bool {
	switch c {
	case CarConvertible, CarHatchback, CarSedan, CarSUV:
		return true
	default:
		return false
	}
}

// MotorcycleCategory is the closed category set for motorcycles.
type MotorcycleCategory string

const (
	MotorcycleCruiser   MotorcycleCategory = "CRUISER"
	MotorcycleDualSport MotorcycleCategory = "DUAL_SPORT"
	MotorcycleStandard  MotorcycleCategory = "STANDARD"
	MotorcycleSports    MotorcycleCategory = "SPORTS"
	MotorcycleTouring   MotorcycleCategory = "TOURING"
)

// IsValidMotorcycleCategory checks if a motorcycle category is valid.
func IsValidMotorcycleCategory(c MotorcycleCategory) bool {
	switch c {
	case MotorcycleCruiser, MotorcycleDualSport, MotorcycleStandard, MotorcycleSports, MotorcycleTouring:
		return true
	default:
		return false
	}
}

// TruckCategory is the closed category set for trucks.
type TruckCategory string

const (
	TruckBoxTruck  TruckCategory = "BOX_TRUCK"
	TruckDumpTruck TruckCategory = "DUMP_TRUCK"
	TruckPickup    TruckCategory = "PICKUP"
	TruckSemiTruck TruckCategory = "SEMI_TRUCK"
	TruckTowTruck  TruckCategory = "TOW_TRUCK"
)

// IsValidTruckCategory checks if a truck category is valid.
func IsValidTruckCategory(c TruckCategory) bool {
	switch c {
	case TruckBoxTruck, TruckDumpTruck, TruckPickup, TruckSemiTruck, TruckTowTruck:
		return true
	default:
		return false
	}
}

// FuelType is the closed fuel enumeration shared by all vehicle kinds.
type FuelType string

const (
	FuelDiesel   FuelType = "DIESEL"
	FuelElectric FuelType = "ELECTRIC"
	FuelHybrid   FuelType = "HYBRID"
	FuelPetrol   FuelType = "PETROL"
)

// IsValidFuelType checks if a fuel type is valid.
func IsValidFuelType(f FuelType) bool {
	switch f {
	case FuelDiesel, FuelElectric, FuelHybrid, FuelPetrol:
		return true
	default:
		return false
	}
}

// EngineType is the closed engine enumeration for motorcycles.
type EngineType string

const (
	EngineSingleCylinder EngineType = "SINGLE_CYLINDER"
	EngineTwinCylinder   EngineType = "TWIN_CYLINDER"
	EngineTripleCylinder EngineType = "TRIPLE_CYLINDER"
	EngineFourCylinder   EngineType = "FOUR_CYLINDER"
	EngineSixCylinder    EngineType = "SIX_CYLINDER"
	EngineElectric       EngineType = "ELECTRIC"
	EngineRotary         EngineType = "ROTARY"
)

// IsValidEngineType checks if an engine type is valid.
func IsValidEngineType(e EngineType) bool {
	switch e {
	case EngineSingleCylinder, EngineTwinCylinder, EngineTripleCylinder,
		EngineFourCylinder, EngineSixCylinder, EngineElectric, EngineRotary:
		return true
	default:
		return false
	}
}
