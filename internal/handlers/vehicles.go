package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/models"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/repo"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/service"
)

// VehicleHandler handles fleet requests for one vehicle kind. The same
// handler type serves /api/cars, /api/motorcycles and /api/trucks; the
// kind decides which request shape is accepted.
type VehicleHandler struct {
	kind     models.VehicleKind
	vehicles *service.VehicleService
	cars     *repo.CarRepository
	motos    *repo.MotorcycleRepository
	trucks   *repo.TruckRepository
	brands   *models.BrandRegistry
}

// NewCarHandler creates a handler for the car fleet.
func NewCarHandler(svc *service.VehicleService, cars *repo.CarRepository, brands *models.BrandRegistry) *VehicleHandler {
	return &VehicleHandler{kind: models.KindCar, vehicles: svc, cars: cars, brands: brands}
}

// NewMotorcycleHandler creates a handler for the motorcycle fleet.
func NewMotorcycleHandler(svc *service.VehicleService, motos *repo.MotorcycleRepository, brands *models.BrandRegistry) *VehicleHandler {
	return &VehicleHandler{kind: models.KindMotorcycle, vehicles: svc, motos: motos, brands: brands}
}

// NewTruckHandler creates a handler for the truck fleet.
func NewTruckHandler(svc *service.VehicleService, trucks *repo.TruckRepository, brands *models.BrandRegistry) *VehicleHandler {
	return &VehicleHandler{kind: models.KindTruck, vehicles: svc, trucks: trucks, brands: brands}
}

type vehicleRequest struct {
	ID             string  `json:"id"`
	LicensePlate   string  `json:"license_plate"`
	Model          string  `json:"model"`
	Brand          string  `json:"brand"`
	FuelType       string  `json:"fuel_type"`
	Category       string  `json:"category"`
	BaseRentalRate float64 `json:"base_rental_rate"`
	Available      *bool   `json:"available"`

	// Car fields
	SeatingCapacity  int     `json:"seating_capacity,omitempty"`
	TransmissionType string  `json:"transmission_type,omitempty"`
	TrunkCapacity    float64 `json:"trunk_capacity,omitempty"`

	// Motorcycle fields
	EngineType string `json:"engine_type,omitempty"`

	// Shared by cars and motorcycles
	Mileage float64 `json:"mileage,omitempty"`

	// Truck fields
	CargoCapacity float64 `json:"cargo_capacity,omitempty"`
	CargoBedSize  float64 `json:"cargo_bed_size,omitempty"`
	AxleCount     int     `json:"axle_count,omitempty"`
}

type vehicleResponse struct {
	ID             string  `json:"id"`
	Kind           string  `json:"kind"`
	LicensePlate   string  `json:"license_plate"`
	Model          string  `json:"model"`
	Brand          string  `json:"brand"`
	FuelType       string  `json:"fuel_type"`
	Category       string  `json:"category"`
	BaseRentalRate float64 `json:"base_rental_rate"`
	Available      bool    `json:"available"`
	Age            int     `json:"age"`

	SeatingCapacity  int     `json:"seating_capacity,omitempty"`
	TransmissionType string  `json:"transmission_type,omitempty"`
	TrunkCapacity    float64 `json:"trunk_capacity,omitempty"`
	EngineType       string  `json:"engine_type,omitempty"`
	Mileage          float64 `json:"mileage,omitempty"`
	CargoCapacity    float64 `json:"cargo_capacity,omitempty"`
	CargoBedSize     float64 `json:"cargo_bed_size,omitempty"`
	AxleCount        int     `json:"axle_count,omitempty"`
}

func toVehicleResponse(v models.Vehicle) vehicleResponse {
	resp := vehicleResponse{
		ID:             v.VehicleID(),
		Kind:           string(v.Kind()),
		LicensePlate:   v.LicensePlate(),
		Model:          v.Model(),
		Brand:          v.Brand().Name,
		FuelType:       string(v.FuelType()),
		Category:       v.CategoryName(),
		BaseRentalRate: v.BaseRentalRate(),
		Available:      v.IsAvailable(),
		Age:            v.Age(),
	}
	switch t := v.(type) {
	case *models.Car:
		resp.SeatingCapacity = t.SeatingCapacity()
		resp.TransmissionType = t.TransmissionType()
		resp.TrunkCapacity = t.TrunkCapacity()
		resp.Mileage = t.Mileage()
	case *models.Motorcycle:
		resp.EngineType = string(t.EngineType())
		resp.Mileage = t.Mileage()
	case *models.Truck:
		resp.CargoCapacity = t.CargoCapacity()
		resp.CargoBedSize = t.CargoBedSize()
		resp.AxleCount = t.AxleCount()
	}
	return resp
}

// HandleCollection serves the collection endpoint: GET lists the fleet
// (with optional filter queries), POST adds a vehicle.
func (h *VehicleHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleItem serves the per-vehicle endpoint: GET fetches, PUT updates
// rate and availability, DELETE removes the vehicle from the fleet.
func (h *VehicleHandler) HandleItem(prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, prefix)
		if id == "" || strings.Contains(id, "/") {
			http.Error(w, "Vehicle ID required", http.StatusBadRequest)
			return
		}

		switch r.Method {
		case http.MethodGet:
			v, ok := h.vehicles.GetVehicleByID(id)
			if !ok {
				http.Error(w, "Vehicle not found", http.StatusNotFound)
				return
			}
			writeJSON(w, http.StatusOK, toVehicleResponse(v))
		case http.MethodPut:
			h.update(w, r, id)
		case http.MethodDelete:
			v, ok := h.vehicles.GetVehicleByID(id)
			if !ok {
				http.Error(w, "Vehicle not found", http.StatusNotFound)
				return
			}
			if !h.vehicles.CancelVehicle(id) {
				http.Error(w, "Failed to delete vehicle", http.StatusInternalServerError)
				return
			}
			h.brands.Dissociate(v.Brand().Name, id)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Vehicle deleted"})
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func (h *VehicleHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("available") == "true" {
		writeVehicleList(w, h.vehicles.GetAvailableVehicles())
		return
	}

	// Kind-specific filter queries take precedence over the full listing.
	switch h.kind {
	case models.KindCar:
		if s := q.Get("seats"); s != "" {
			seats, err := strconv.Atoi(s)
			if err != nil {
				http.Error(w, "Invalid seats value", http.StatusBadRequest)
				return
			}
			writeJSON(w, http.StatusOK, carResponses(h.cars.FindBySeatingCapacity(seats)))
			return
		}
		if t := q.Get("transmission"); t != "" {
			writeJSON(w, http.StatusOK, carResponses(h.cars.FindByTransmissionType(t)))
			return
		}
		if q.Has("min_trunk") || q.Has("max_trunk") {
			min, max, err := parseRange(q.Get("min_trunk"), q.Get("max_trunk"), 0, 1500)
			if err != nil {
				http.Error(w, "Invalid trunk capacity range", http.StatusBadRequest)
				return
			}
			writeJSON(w, http.StatusOK, carResponses(h.cars.FindByTrunkCapacityRange(min, max)))
			return
		}
	case models.KindMotorcycle:
		if e := q.Get("engine"); e != "" {
			writeJSON(w, http.StatusOK, motorcycleResponses(h.motos.FindByEngineType(e)))
			return
		}
		if q.Has("min_mileage") || q.Has("max_mileage") {
			min, max, err := parseRange(q.Get("min_mileage"), q.Get("max_mileage"), 0, 42)
			if err != nil {
				http.Error(w, "Invalid mileage range", http.StatusBadRequest)
				return
			}
			writeJSON(w, http.StatusOK, motorcycleResponses(h.motos.FindByMileageRange(min, max)))
			return
		}
	case models.KindTruck:
		if c := q.Get("cargo"); c != "" {
			cargo, err := strconv.ParseFloat(c, 64)
			if err != nil {
				http.Error(w, "Invalid cargo value", http.StatusBadRequest)
				return
			}
			writeJSON(w, http.StatusOK, truckResponses(h.trucks.FindByCargoCapacity(cargo)))
			return
		}
		if a := q.Get("axles"); a != "" {
			axles, err := strconv.Atoi(a)
			if err != nil {
				http.Error(w, "Invalid axles value", http.StatusBadRequest)
				return
			}
			writeJSON(w, http.StatusOK, truckResponses(h.trucks.FindByAxleCount(axles)))
			return
		}
		if q.Has("min_bed") || q.Has("max_bed") {
			min, max, err := parseRange(q.Get("min_bed"), q.Get("max_bed"), 0, 4000)
			if err != nil {
				http.Error(w, "Invalid cargo bed size range", http.StatusBadRequest)
				return
			}
			writeJSON(w, http.StatusOK, truckResponses(h.trucks.FindByCargoBedSizeRange(min, max)))
			return
		}
	}

	writeVehicleList(w, h.vehicles.GetAllVehicles())
}

func (h *VehicleHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req vehicleRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	brand, ok := h.brands.Brand(req.Brand)
	if !ok {
		http.Error(w, "Unknown brand", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	v, err := h.buildVehicle(&req, brand, available)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.vehicles.AddVehicle(v) {
		http.Error(w, "Failed to add vehicle", http.StatusInternalServerError)
		return
	}
	if err := h.brands.Associate(brand.Name, v.VehicleID()); err != nil {
		http.Error(w, "Failed to associate brand", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toVehicleResponse(v))
}

func (h *VehicleHandler) buildVehicle(req *vehicleRequest, brand *models.Brand, available bool) (models.Vehicle, error) {
	fuel := models.FuelType(req.FuelType)
	switch h.kind {
	case models.KindCar:
		return models.NewCar(req.ID, req.LicensePlate, req.Model, brand, fuel,
			models.CarCategory(req.Category), req.BaseRentalRate, available,
			req.SeatingCapacity, req.TransmissionType, req.TrunkCapacity, req.Mileage)
	case models.KindMotorcycle:
		return models.NewMotorcycle(req.ID, req.LicensePlate, req.Model, brand, fuel,
			models.MotorcycleCategory(req.Category), req.BaseRentalRate, available,
			models.EngineType(req.EngineType), req.Mileage)
	default:
		return models.NewTruck(req.ID, req.LicensePlate, req.Model, brand, fuel,
			models.TruckCategory(req.Category), req.BaseRentalRate, available,
			req.CargoCapacity, req.CargoBedSize, req.AxleCount)
	}
}

// update mutates only the fields a stored vehicle allows to change after
// construction. Identity fields in the request body are ignored.
func (h *VehicleHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req struct {
		BaseRentalRate *float64 `json:"base_rental_rate"`
		Available      *bool    `json:"available"`
		Category       *string  `json:"category"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	v, ok := h.vehicles.GetVehicleByID(id)
	if !ok {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	if req.BaseRentalRate != nil {
		if err := v.SetBaseRentalRate(*req.BaseRentalRate); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if req.Available != nil {
		v.SetAvailable(*req.Available)
	}
	if req.Category != nil {
		if err := setCategory(v, *req.Category); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if !h.vehicles.UpdateVehicle(v) {
		http.Error(w, "Failed to update vehicle", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toVehicleResponse(v))
}

func setCategory(v models.Vehicle, category string) error {
	switch t := v.(type) {
	case *models.Car:
		return t.SetCategory(models.CarCategory(category))
	case *models.Motorcycle:
		return t.SetCategory(models.MotorcycleCategory(category))
	case *models.Truck:
		return t.SetCategory(models.TruckCategory(category))
	}
	return models.ErrInvalidCategory
}

func writeVehicleList(w http.ResponseWriter, vehicles []models.Vehicle) {
	resp := make([]vehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		resp = append(resp, toVehicleResponse(v))
	}
	writeJSON(w, http.StatusOK, resp)
}

func carResponses(cars []*models.Car) []vehicleResponse {
	resp := make([]vehicleResponse, 0, len(cars))
	for _, c := range cars {
		resp = append(resp, toVehicleResponse(c))
	}
	return resp
}

func motorcycleResponses(motos []*models.Motorcycle) []vehicleResponse {
	resp := make([]vehicleResponse, 0, len(motos))
	for _, m := range motos {
		resp = append(resp, toVehicleResponse(m))
	}
	return resp
}

func truckResponses(trucks []*models.Truck) []vehicleResponse {
	resp := make([]vehicleResponse, 0, len(trucks))
	for _, t := range trucks {
		resp = append(resp, toVehicleResponse(t))
	}
	return resp
}

func parseRange(minStr, maxStr string, defMin, defMax float64) (float64, float64, error) {
	min, max := defMin, defMax
	var err error
	if minStr != "" {
		if min, err = strconv.ParseFloat(minStr, 64); err != nil {
			return 0, 0, err
		}
	}
	if maxStr != "" {
		if max, err = strconv.ParseFloat(maxStr, 64); err != nil {
			return 0, 0, err
		}
	}
	return min, max, nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
