package models

import (
	"errors"
	"testing"
	"time"
)

func testBrand(t *testing.T, name string, year int) *Brand {
	t.Helper()
	b, err := NewBrand(name, year, "Japan")
	if err != nil {
		t.Fatalf("NewBrand(%s) failed: %v", name, err)
	}
	return b
}

func validCar(t *testing.T) *Car {
	t.Helper()
	c, err := NewCar("car-1", "GR-1042-22", "Corolla", testBrand(t, "Toyota", 1937),
		FuelHybrid, CarSedan, 45.0, true, 5, "Automatic", 470, 14.2)
	if err != nil {
		t.Fatalf("NewCar failed: %v", err)
	}
	return c
}

func TestNewCar_Validation(t *testing.T) {
	brand := testBrand(t, "Toyota", 1937)

	tests := []struct {
		name    string
		mutate  func() (*Car, error)
		wantErr error
	}{
		{"empty id", func() (*Car, error) {
			return NewCar("", "P", "M", brand, FuelPetrol, CarSedan, 10, true, 5, "Manual", 400, 12)
		}, ErrEmptyVehicleID},
		{"empty plate", func() (*Car, error) {
			return NewCar("id", "", "M", brand, FuelPetrol, CarSedan, 10, true, 5, "Manual", 400, 12)
		}, ErrEmptyLicensePlate},
		{"empty model", func() (*Car, error) {
			return NewCar("id", "P", "", brand, FuelPetrol, CarSedan, 10, true, 5, "Manual", 400, 12)
		}, ErrEmptyModel},
		{"nil brand", func() (*Car, error) {
			return NewCar("id", "P", "M", nil, FuelPetrol, CarSedan, 10, true, 5, "Manual", 400, 12)
		}, ErrNilBrand},
		{"invalid fuel", func() (*Car, error) {
			return NewCar("id", "P", "M", brand, "KEROSENE", CarSedan, 10, true, 5, "Manual", 400, 12)
		}, ErrInvalidFuelType},
		{"negative rate", func() (*Car, error) {
			return NewCar("id", "P", "M", brand, FuelPetrol, CarSedan, -1, true, 5, "Manual", 400, 12)
		}, ErrNegativeRentalRate},
		{"invalid category", func() (*Car, error) {
			return NewCar("id", "P", "M", brand, FuelPetrol, "CRUISER", 10, true, 5, "Manual", 400, 12)
		}, ErrInvalidCategory},
		{"seats below range", func() (*Car, error) {
			return NewCar("id", "P", "M", brand, FuelPetrol, CarSedan, 10, true, 1, "Manual", 400, 12)
		}, ErrSeatingCapacity},
		{"seats above range", func() (*Car, error) {
			return NewCar("id", "P", "M", brand, FuelPetrol, CarSedan, 10, true, 10, "Manual", 400, 12)
		}, ErrSeatingCapacity},
		{"invalid transmission", func() (*Car, error) {
			return NewCar("id", "P", "M", brand, FuelPetrol, CarSedan, 10, true, 5, "CVT", 400, 12)
		}, ErrTransmissionType},
		{"trunk at lower bound is rejected", func() (*Car, error) {
			return NewCar("id", "P", "M", brand, FuelPetrol, CarSedan, 10, true, 5, "Manual", 340, 12)
		}, ErrTrunkCapacity},
		{"trunk above range", func() (*Car, error) {
			return NewCar("id", "P", "M", brand, FuelPetrol, CarSedan, 10, true, 5, "Manual", 1501, 12)
		}, ErrTrunkCapacity},
		{"mileage below range", func() (*Car, error) {
			return NewCar("id", "P", "M", brand, FuelPetrol, CarSedan, 10, true, 5, "Manual", 400, 8.4)
		}, ErrCarMileage},
		{"mileage above range", func() (*Car, error) {
			return NewCar("id", "P", "M", brand, FuelPetrol, CarSedan, 10, true, 5, "Manual", 400, 15.1)
		}, ErrCarMileage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.mutate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got err %v, want %v", err, tt.wantErr)
			}
			if c != nil {
				t.Errorf("expected nil car on validation failure, got %+v", c)
			}
		})
	}
}

func TestNewCar_Valid(t *testing.T) {
	c := validCar(t)

	if c.Kind() != KindCar {
		t.Errorf("Kind() = %v, want %v", c.Kind(), KindCar)
	}
	if c.CategoryName() != "SEDAN" {
		t.Errorf("CategoryName() = %v, want SEDAN", c.CategoryName())
	}
	if !c.IsAvailable() {
		t.Error("expected new car to be available")
	}
	if c.SeatingCapacity() != 5 || c.TransmissionType() != "Automatic" {
		t.Errorf("unexpected attributes: %d seats, %s", c.SeatingCapacity(), c.TransmissionType())
	}
}

func TestCar_TransmissionCaseInsensitive(t *testing.T) {
	brand := testBrand(t, "Toyota", 1937)
	for _, transmission := range []string{"manual", "MANUAL", "automatic", "Automatic"} {
		if _, err := NewCar("id", "P", "M", brand, FuelPetrol, CarSedan, 10, true, 5, transmission, 400, 12); err != nil {
			t.Errorf("transmission %q rejected: %v", transmission, err)
		}
	}
}

func TestCar_Setters(t *testing.T) {
	c := validCar(t)

	if err := c.SetSeatingCapacity(7); err != nil {
		t.Fatalf("SetSeatingCapacity failed: %v", err)
	}
	if c.SeatingCapacity() != 7 {
		t.Errorf("SeatingCapacity() = %d, want 7", c.SeatingCapacity())
	}
	if err := c.SetSeatingCapacity(12); !errors.Is(err, ErrSeatingCapacity) {
		t.Errorf("expected ErrSeatingCapacity, got %v", err)
	}
	// Failed setter must not change state
	if c.SeatingCapacity() != 7 {
		t.Errorf("failed setter changed state: %d", c.SeatingCapacity())
	}

	if err := c.SetBaseRentalRate(-5); !errors.Is(err, ErrNegativeRentalRate) {
		t.Errorf("expected ErrNegativeRentalRate, got %v", err)
	}
	if err := c.SetBaseRentalRate(60); err != nil || c.BaseRentalRate() != 60 {
		t.Errorf("SetBaseRentalRate(60): err %v, rate %v", err, c.BaseRentalRate())
	}

	if err := c.SetCategory("BOX_TRUCK"); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestVehicle_Age(t *testing.T) {
	year := time.Now().Year()
	c, err := NewCar("car-1", "P", "M", testBrand(t, "Toyota", year-10),
		FuelPetrol, CarSedan, 10, true, 5, "Manual", 400, 12)
	if err != nil {
		t.Fatalf("NewCar failed: %v", err)
	}
	if c.Age() != 10 {
		t.Errorf("Age() = %d, want 10", c.Age())
	}

	future, err := NewCar("car-2", "P", "M", testBrand(t, "Newco", year+2),
		FuelPetrol, CarSedan, 10, true, 5, "Manual", 400, 12)
	if err != nil {
		t.Fatalf("NewCar failed: %v", err)
	}
	if future.Age() != -2 {
		t.Errorf("Age() for future founding year = %d, want -2", future.Age())
	}
}

func TestNewMotorcycle_Validation(t *testing.T) {
	brand := testBrand(t, "Honda", 1948)

	tests := []struct {
		name    string
		mileage float64
		engine  EngineType
		wantErr error
	}{
		{"valid", 27.5, EngineTwinCylinder, nil},
		{"mileage below range", 12.6, EngineTwinCylinder, ErrMotorcycleMileage},
		{"mileage above range", 42.1, EngineTwinCylinder, ErrMotorcycleMileage},
		{"invalid engine", 27.5, "V8", ErrInvalidEngineType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMotorcycle("moto-1", "M-431-24", "CB500F", brand, FuelPetrol,
				MotorcycleStandard, 25, true, tt.engine, tt.mileage)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got err %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewTruck_Validation(t *testing.T) {
	brand := testBrand(t, "Peterbilt", 1939)

	tests := []struct {
		name    string
		cargo   float64
		bedSize float64
		axles   int
		wantErr error
	}{
		{"valid", 1800, 1900, 3, nil},
		{"cargo below range", 549, 1900, 3, ErrCargoCapacity},
		{"cargo above range", 3201, 1900, 3, ErrCargoCapacity},
		{"bed below range", 1800, 699, 3, ErrCargoBedSize},
		{"bed above range", 1800, 4001, 3, ErrCargoBedSize},
		{"axles below range", 1800, 1900, 1, ErrAxleCount},
		{"axles above range", 1800, 1900, 11, ErrAxleCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTruck("truck-1", "T-2045-19", "579", brand, FuelDiesel,
				TruckSemiTruck, 240, true, tt.cargo, tt.bedSize, tt.axles)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got err %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTruck_Kind(t *testing.T) {
	brand := testBrand(t, "Ford", 1903)
	truck, err := NewTruck("truck-1", "T-7731-20", "F-350", brand, FuelDiesel,
		TruckPickup, 95, true, 1800, 1900, 2)
	if err != nil {
		t.Fatalf("NewTruck failed: %v", err)
	}
	if truck.Kind() != KindTruck {
		t.Errorf("Kind() = %v, want %v", truck.Kind(), KindTruck)
	}
	moto, err := NewMotorcycle("moto-1", "M-1", "R1", brand, FuelPetrol,
		MotorcycleSports, 70, true, EngineFourCylinder, 14.9)
	if err != nil {
		t.Fatalf("NewMotorcycle failed: %v", err)
	}
	if moto.Kind() != KindMotorcycle {
		t.Errorf("Kind() = %v, want %v", moto.Kind(), KindMotorcycle)
	}
}
