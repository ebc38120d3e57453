// Package pricing computes rental costs. Each vehicle kind has its own
// calculator assembled from factor tables; lookups that miss a table fall
// back to a neutral 1.0 so a calculator never rejects a vehicle it does
// not recognize.
package pricing

import (
	"errors"
	"time"

	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/models"
)

var ErrNonPositiveDays = errors.New("rental days must be positive")

var (
	carCategoryFactors = map[string]float64{
		string(models.CarConvertible): 1.5,
		string(models.CarHatchback):   1.0,
		string(models.CarSedan):       1.2,
		string(models.CarSUV):         1.3,
	}
	carFuelFactors = map[models.FuelType]float64{
		models.FuelElectric: 0.8,
		models.FuelPetrol:   1.0,
		models.FuelHybrid:   1.2,
		models.FuelDiesel:   1.1,
	}
	carBrandFactors = map[string]float64{
		"Mercedes": 1.3,
		"Toyota":   1.0,
		"BMW":      1.2,
		"Ford":     0.9,
	}

	motorcycleCategoryFactors = map[string]float64{
		string(models.MotorcycleCruiser):   1.2,
		string(models.MotorcycleDualSport): 1.3,
		string(models.MotorcycleStandard):  1.0,
		string(models.MotorcycleSports):    1.5,
		string(models.MotorcycleTouring):   1.4,
	}
	motorcycleFuelFactors = map[models.FuelType]float64{
		models.FuelElectric: 0.9,
		models.FuelPetrol:   1.0,
		models.FuelHybrid:   1.1,
		models.FuelDiesel:   1.2,
	}
	motorcycleBrandFactors = map[string]float64{
		"Harley-Davidson": 1.4,
		"Honda":           1.1,
		"Yamaha":          1.2,
	}

	truckCategoryFactors = map[string]float64{
		string(models.TruckBoxTruck):  1.6,
		string(models.TruckDumpTruck): 1.8,
		string(models.TruckPickup):    1.2,
		string(models.TruckSemiTruck): 2.0,
		string(models.TruckTowTruck):  1.7,
	}
	truckFuelFactors = map[models.FuelType]float64{
		models.FuelElectric: 1.0,
		models.FuelPetrol:   1.0,
		models.FuelHybrid:   1.3,
		models.FuelDiesel:   1.2,
	}
	truckBrandFactors = map[string]float64{
		"Ford":      1.1,
		"Chevrolet": 1.2,
		"Peterbilt": 1.4,
	}
)

// Calculator prices rentals for one vehicle kind. The car calculator
// computes a brand factor but does not apply it to the final price; the
// motorcycle and truck calculators apply it.
type Calculator struct {
	kind            models.VehicleKind
	categoryFactors map[string]float64
	fuelFactors     map[models.FuelType]float64
	brandFactors    map[string]float64
	applyBrand      bool
}

var calculators = map[models.VehicleKind]*Calculator{
	models.KindCar: {
		kind:            models.KindCar,
		categoryFactors: carCategoryFactors,
		fuelFactors:     carFuelFactors,
		brandFactors:    carBrandFactors,
		applyBrand:      false,
	},
	models.KindMotorcycle: {
		kind:            models.KindMotorcycle,
		categoryFactors: motorcycleCategoryFactors,
		fuelFactors:     motorcycleFuelFactors,
		brandFactors:    motorcycleBrandFactors,
		applyBrand:      true,
	},
	models.KindTruck: {
		kind:            models.KindTruck,
		categoryFactors: truckCategoryFactors,
		fuelFactors:     truckFuelFactors,
		brandFactors:    truckBrandFactors,
		applyBrand:      true,
	},
}

// neutral prices any unrecognized kind with all factors at 1.0.
var neutral = &Calculator{applyBrand: true}

// ForKind returns the calculator for a vehicle kind.
func ForKind(kind models.VehicleKind) *Calculator {
	if c, ok := calculators[kind]; ok {
		return c
	}
	return neutral
}

// ForVehicle returns the calculator matching the vehicle's kind.
func ForVehicle(v models.Vehicle) *Calculator {
	return ForKind(v.Kind())
}

// AgeFactor is 0.05 per calendar year since the brand was founded. It is
// linear and unclamped; future founding years yield a negative factor.
func (c *Calculator) AgeFactor(v models.Vehicle) float64 {
	return 0.05 * float64(v.Age())
}

// CategoryFactor returns the multiplier for the vehicle's category, or
// 1.0 when the category is not in the table.
func (c *Calculator) CategoryFactor(v models.Vehicle) float64 {
	if f, ok := c.categoryFactors[v.CategoryName()]; ok {
		return f
	}
	return 1.0
}

// FuelFactor returns the multiplier for the vehicle's fuel type, or 1.0
// when the fuel type is not in the table.
func (c *Calculator) FuelFactor(v models.Vehicle) float64 {
	if f, ok := c.fuelFactors[v.FuelType()]; ok {
		return f
	}
	return 1.0
}

// BrandFactor returns the multiplier for the vehicle's brand name (exact
// match), or 1.0 when the brand is not in the table. The car calculator
// exposes this factor without applying it.
func (c *Calculator) BrandFactor(v models.Vehicle) float64 {
	if f, ok := c.brandFactors[v.Brand().Name]; ok {
		return f
	}
	return 1.0
}

// Cost prices a rental of the given whole-day duration. The day count
// must be positive.
func (c *Calculator) Cost(v models.Vehicle, days int) (float64, error) {
	if days <= 0 {
		return 0, ErrNonPositiveDays
	}
	return c.cost(v, days, 1.0), nil
}

// Quote prices a booking, applying the calendar-based dynamic pricing
// factor derived from the rental start date. A same-day return has
// duration 0 and therefore costs 0.
func (c *Calculator) Quote(b *models.Booking) float64 {
	return c.cost(b.Vehicle(), b.Duration(), DynamicPricingFactor(b.RentalDate()))
}

func (c *Calculator) cost(v models.Vehicle, days int, dynamic float64) float64 {
	total := v.BaseRentalRate() * float64(days) *
		(1 + c.AgeFactor(v)) * c.CategoryFactor(v) * c.FuelFactor(v) * dynamic
	if c.applyBrand {
		total *= c.BrandFactor(v)
	}
	return total
}

// DynamicPricingFactor starts at 1.0, adds 0.2 for rentals starting on a
// weekend and a further 0.5 for rentals starting in June, July, August or
// December. The surcharges stack.
func DynamicPricingFactor(start time.Time) float64 {
	factor := 1.0
	if start.Weekday() == time.Saturday || start.Weekday() == time.Sunday {
		factor += 0.2
	}
	switch start.Month() {
	case time.June, time.July, time.August, time.December:
		factor += 0.5
	}
	return factor
}
