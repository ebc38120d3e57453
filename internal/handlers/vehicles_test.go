package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/models"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/repo"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/service"
)

func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

type carFixture struct {
	handler *VehicleHandler
	cars    *repo.CarRepository
	brands  *models.BrandRegistry
}

func newCarFixture(t *testing.T) *carFixture {
	t.Helper()
	brands := models.NewBrandRegistry()
	toyota, err := models.NewBrand("Toyota", 1937, "Japan")
	require.NoError(t, err)
	require.NoError(t, brands.Register(toyota))

	cars := repo.NewCarRepository()
	svc := service.NewVehicleService(cars, quietLogger())
	return &carFixture{
		handler: NewCarHandler(svc, cars, brands),
		cars:    cars,
		brands:  brands,
	}
}

func (f *carFixture) post(t *testing.T, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/cars", bytes.NewReader(data))
	rr := httptest.NewRecorder()
	f.handler.HandleCollection(rr, req)
	return rr
}

func carPayload() map[string]interface{} {
	return map[string]interface{}{
		"license_plate":     "GR-1042-22",
		"model":             "Corolla",
		"brand":             "Toyota",
		"fuel_type":         "HYBRID",
		"category":          "SEDAN",
		"base_rental_rate":  45.0,
		"seating_capacity":  5,
		"transmission_type": "Automatic",
		"trunk_capacity":    470.0,
		"mileage":           14.2,
	}
}

func TestVehicleHandler_CreateCar(t *testing.T) {
	f := newCarFixture(t)

	rr := f.post(t, carPayload())
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp vehicleResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID) // generated when the request omits one
	assert.Equal(t, "car", resp.Kind)
	assert.Equal(t, "SEDAN", resp.Category)
	assert.True(t, resp.Available)

	// The brand association is recorded in the registry
	assert.Equal(t, []string{resp.ID}, f.brands.VehicleIDs("Toyota"))
}

func TestVehicleHandler_CreateValidation(t *testing.T) {
	f := newCarFixture(t)

	unknownBrand := carPayload()
	unknownBrand["brand"] = "Nissan"
	assert.Equal(t, http.StatusBadRequest, f.post(t, unknownBrand).Code)

	badSeats := carPayload()
	badSeats["seating_capacity"] = 1
	assert.Equal(t, http.StatusBadRequest, f.post(t, badSeats).Code)

	badCategory := carPayload()
	badCategory["category"] = "CRUISER"
	assert.Equal(t, http.StatusBadRequest, f.post(t, badCategory).Code)

	assert.Empty(t, f.cars.GetAll())
}

func TestVehicleHandler_ListAndFilters(t *testing.T) {
	f := newCarFixture(t)

	first := carPayload()
	first["id"] = "car-1"
	require.Equal(t, http.StatusCreated, f.post(t, first).Code)

	second := carPayload()
	second["id"] = "car-2"
	second["seating_capacity"] = 7
	second["transmission_type"] = "Manual"
	second["trunk_capacity"] = 650.0
	require.Equal(t, http.StatusCreated, f.post(t, second).Code)

	list := func(query string) []vehicleResponse {
		req := httptest.NewRequest(http.MethodGet, "/api/cars"+query, nil)
		rr := httptest.NewRecorder()
		f.handler.HandleCollection(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp []vehicleResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		return resp
	}

	assert.Len(t, list(""), 2)
	assert.Len(t, list("?seats=7"), 1)
	assert.Len(t, list("?transmission=manual"), 1)
	assert.Len(t, list("?min_trunk=600"), 1)
	assert.Len(t, list("?max_trunk=500"), 1)
	assert.Empty(t, list("?seats=2"))
}

func TestVehicleHandler_ItemLifecycle(t *testing.T) {
	f := newCarFixture(t)
	payload := carPayload()
	payload["id"] = "car-1"
	require.Equal(t, http.StatusCreated, f.post(t, payload).Code)

	item := f.handler.HandleItem("/api/cars/")

	// GET
	req := httptest.NewRequest(http.MethodGet, "/api/cars/car-1", nil)
	rr := httptest.NewRecorder()
	item(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	// PUT: rate and availability
	update, _ := json.Marshal(map[string]interface{}{
		"base_rental_rate": 60.0,
		"available":        false,
	})
	req = httptest.NewRequest(http.MethodPut, "/api/cars/car-1", bytes.NewReader(update))
	rr = httptest.NewRecorder()
	item(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp vehicleResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 60.0, resp.BaseRentalRate)
	assert.False(t, resp.Available)

	// PUT: negative rate rejected
	bad, _ := json.Marshal(map[string]interface{}{"base_rental_rate": -1.0})
	req = httptest.NewRequest(http.MethodPut, "/api/cars/car-1", bytes.NewReader(bad))
	rr = httptest.NewRecorder()
	item(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// DELETE clears the brand association
	req = httptest.NewRequest(http.MethodDelete, "/api/cars/car-1", nil)
	rr = httptest.NewRecorder()
	item(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, f.brands.VehicleIDs("Toyota"))

	// GET after delete
	req = httptest.NewRequest(http.MethodGet, "/api/cars/car-1", nil)
	rr = httptest.NewRecorder()
	item(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBrandHandler(t *testing.T) {
	brands := models.NewBrandRegistry()
	handler := NewBrandHandler(brands)

	payload, _ := json.Marshal(map[string]interface{}{
		"name":              "Yamaha",
		"year":              1955,
		"country_of_origin": "Japan",
		"categories":        []string{"SPORTS", "TOURING"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/brands", bytes.NewReader(payload))
	rr := httptest.NewRecorder()
	handler.HandleCollection(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	// Duplicate name conflicts
	req = httptest.NewRequest(http.MethodPost, "/api/brands", bytes.NewReader(payload))
	rr = httptest.NewRecorder()
	handler.HandleCollection(rr, req)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Item lookup
	req = httptest.NewRequest(http.MethodGet, "/api/brands/Yamaha", nil)
	rr = httptest.NewRecorder()
	handler.HandleItem(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp brandResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []string{"SPORTS", "TOURING"}, resp.Categories)

	req = httptest.NewRequest(http.MethodGet, "/api/brands/Nissan", nil)
	rr = httptest.NewRecorder()
	handler.HandleItem(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
