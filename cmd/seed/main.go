package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// Seeder populates a running rental server with a sample fleet, a few
// customers and one booking per customer, all through the HTTP API.

var authToken string

func authorizedPost(url string, payload interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request to %s failed with status %d", url, resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result, nil
}

func login(apiURL, username, password string) (string, error) {
	result, err := authorizedPost(apiURL+"/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	token, ok := result["token"].(string)
	if !ok || token == "" {
		return "", fmt.Errorf("no token in login response")
	}
	return token, nil
}

type brandSeed struct {
	Name            string   `json:"name"`
	Year            int      `json:"year"`
	CountryOfOrigin string   `json:"country_of_origin"`
	Categories      []string `json:"categories"`
}

var brandSeeds = []brandSeed{
	{Name: "Toyota", Year: 1937, CountryOfOrigin: "Japan", Categories: []string{"SEDAN", "SUV"}},
	{Name: "Ford", Year: 1903, CountryOfOrigin: "USA", Categories: []string{"HATCHBACK", "PICKUP"}},
	{Name: "BMW", Year: 1916, CountryOfOrigin: "Germany", Categories: []string{"CONVERTIBLE", "SEDAN"}},
	{Name: "Mercedes", Year: 1926, CountryOfOrigin: "Germany", Categories: []string{"SEDAN", "SUV"}},
	{Name: "Honda", Year: 1948, CountryOfOrigin: "Japan", Categories: []string{"STANDARD", "SPORTS"}},
	{Name: "Yamaha", Year: 1955, CountryOfOrigin: "Japan", Categories: []string{"SPORTS", "TOURING"}},
	{Name: "Harley-Davidson", Year: 1903, CountryOfOrigin: "USA", Categories: []string{"CRUISER"}},
	{Name: "Chevrolet", Year: 1911, CountryOfOrigin: "USA", Categories: []string{"PICKUP", "BOX_TRUCK"}},
	{Name: "Peterbilt", Year: 1939, CountryOfOrigin: "USA", Categories: []string{"SEMI_TRUCK", "DUMP_TRUCK"}},
}

var carSeeds = []map[string]interface{}{
	{"license_plate": "GR-1042-22", "model": "Corolla", "brand": "Toyota", "fuel_type": "HYBRID",
		"category": "SEDAN", "base_rental_rate": 45.0, "seating_capacity": 5,
		"transmission_type": "Automatic", "trunk_capacity": 470.0, "mileage": 14.2},
	{"license_plate": "GR-2210-23", "model": "Mustang", "brand": "Ford", "fuel_type": "PETROL",
		"category": "CONVERTIBLE", "base_rental_rate": 90.0, "seating_capacity": 4,
		"transmission_type": "Manual", "trunk_capacity": 382.0, "mileage": 9.1},
	{"license_plate": "GR-0870-21", "model": "X5", "brand": "BMW", "fuel_type": "DIESEL",
		"category": "SUV", "base_rental_rate": 110.0, "seating_capacity": 7,
		"transmission_type": "Automatic", "trunk_capacity": 650.0, "mileage": 11.4},
}

var motorcycleSeeds = []map[string]interface{}{
	{"license_plate": "M-431-24", "model": "CB500F", "brand": "Honda", "fuel_type": "PETROL",
		"category": "STANDARD", "base_rental_rate": 25.0, "engine_type": "TWIN_CYLINDER", "mileage": 27.5},
	{"license_plate": "M-512-23", "model": "Street Glide", "brand": "Harley-Davidson", "fuel_type": "PETROL",
		"category": "CRUISER", "base_rental_rate": 60.0, "engine_type": "TWIN_CYLINDER", "mileage": 18.0},
	{"license_plate": "M-118-24", "model": "R1", "brand": "Yamaha", "fuel_type": "PETROL",
		"category": "SPORTS", "base_rental_rate": 70.0, "engine_type": "FOUR_CYLINDER", "mileage": 14.9},
}

var truckSeeds = []map[string]interface{}{
	{"license_plate": "T-7731-20", "model": "F-350", "brand": "Ford", "fuel_type": "DIESEL",
		"category": "PICKUP", "base_rental_rate": 95.0, "cargo_capacity": 1800.0,
		"cargo_bed_size": 1900.0, "axle_count": 2},
	{"license_plate": "T-2045-19", "model": "579", "brand": "Peterbilt", "fuel_type": "DIESEL",
		"category": "SEMI_TRUCK", "base_rental_rate": 240.0, "cargo_capacity": 3100.0,
		"cargo_bed_size": 3800.0, "axle_count": 5},
	{"license_plate": "T-9983-22", "model": "Silverado 3500", "brand": "Chevrolet", "fuel_type": "PETROL",
		"category": "BOX_TRUCK", "base_rental_rate": 120.0, "cargo_capacity": 2200.0,
		"cargo_bed_size": 2600.0, "axle_count": 3},
}

var customerSeeds = []map[string]interface{}{
	{"name": "Abena Mensah", "license_number": "DL-559-20417",
		"contact": map[string]string{"email": "abena.mensah@example.com", "phone": "+233-24-555-0171"}},
	{"name": "Kwame Boateng", "license_number": "DL-812-99023",
		"contact": map[string]string{"email": "kwame.boateng@example.com"}},
	{"name": "Efua Owusu", "license_number": "DL-305-41188",
		"contact": map[string]string{"phone": "+233-20-555-0034"}},
}

func seedCollection(apiURL, path string, payloads []map[string]interface{}) []string {
	ids := make([]string, 0, len(payloads))
	for _, payload := range payloads {
		result, err := authorizedPost(apiURL+path, payload)
		if err != nil {
			log.WithError(err).WithField("path", path).Error("Failed to seed entry")
			continue
		}
		id, _ := result["id"].(string)
		ids = append(ids, id)
		log.WithFields(log.Fields{"path": path, "id": id}).Info("Seeded entry")
	}
	return ids
}

func main() {
	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin-change-me"
	}

	token, err := login(apiURL, username, password)
	if err != nil {
		log.WithError(err).Fatal("Login failed, is the server running?")
	}
	authToken = token
	log.Info("Authenticated against rental API")

	for _, b := range brandSeeds {
		if _, err := authorizedPost(apiURL+"/brands", b); err != nil {
			log.WithError(err).WithField("brand", b.Name).Error("Failed to seed brand")
			continue
		}
		log.WithField("brand", b.Name).Info("Seeded brand")
	}

	vehicleIDs := seedCollection(apiURL, "/cars", carSeeds)
	vehicleIDs = append(vehicleIDs, seedCollection(apiURL, "/motorcycles", motorcycleSeeds)...)
	vehicleIDs = append(vehicleIDs, seedCollection(apiURL, "/trucks", truckSeeds)...)

	customerIDs := seedCollection(apiURL, "/customers", customerSeeds)

	// One booking per customer over the next weeks, round-robin through
	// the seeded fleet.
	start := time.Now().AddDate(0, 0, 3)
	for i, customerID := range customerIDs {
		if i >= len(vehicleIDs) {
			break
		}
		booking := map[string]interface{}{
			"vehicle_id":  vehicleIDs[i],
			"customer_id": customerID,
			"rental_date": start.AddDate(0, 0, i*7).Format("2006-01-02"),
			"return_date": start.AddDate(0, 0, i*7+4).Format("2006-01-02"),
		}
		result, err := authorizedPost(apiURL+"/bookings", booking)
		if err != nil {
			log.WithError(err).Error("Failed to seed booking")
			continue
		}
		log.WithFields(log.Fields{
			"vehicle_id":  vehicleIDs[i],
			"customer_id": customerID,
			"cost":        result["cost"],
		}).Info("Seeded booking")
	}

	log.WithFields(log.Fields{
		"vehicles":  len(vehicleIDs),
		"customers": len(customerIDs),
	}).Info("Seeding completed")
}
