package main

import (
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/auth"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/handlers"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/middleware"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/models"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/repo"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/service"
)

func main() {
	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}
	logger := log.StandardLogger()

	authService, err := auth.NewService()
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	// Stores
	brands := models.NewBrandRegistry()
	carRepo := repo.NewCarRepository()
	motoRepo := repo.NewMotorcycleRepository()
	truckRepo := repo.NewTruckRepository()
	customerRepo := repo.NewCustomerRepository()
	bookingRepo := repo.NewBookingRepository()
	accountRepo := repo.NewAccountRepository()

	// Services
	carService := service.NewVehicleService(carRepo, logger)
	motoService := service.NewVehicleService(motoRepo, logger)
	truckService := service.NewVehicleService(truckRepo, logger)
	customerService := service.NewCustomerService(customerRepo, logger)
	bookingService := service.NewBookingService(bookingRepo, logger)

	if err := seedAdminAccount(authService, accountRepo); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, accountRepo)
	brandHandler := handlers.NewBrandHandler(brands)
	carHandler := handlers.NewCarHandler(carService, carRepo, brands)
	motoHandler := handlers.NewMotorcycleHandler(motoService, motoRepo, brands)
	truckHandler := handlers.NewTruckHandler(truckService, truckRepo, brands)
	customerHandler := handlers.NewCustomerHandler(customerService)
	bookingHandler := handlers.NewBookingHandler(bookingService, customerService,
		carService, motoService, truckService)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.HandleFunc("/api/auth/profile", authHandler.GetProfile)

	mux.HandleFunc("/api/brands", brandHandler.HandleCollection)
	mux.HandleFunc("/api/brands/", brandHandler.HandleItem)
	mux.HandleFunc("/api/cars", carHandler.HandleCollection)
	mux.HandleFunc("/api/cars/", carHandler.HandleItem("/api/cars/"))
	mux.HandleFunc("/api/motorcycles", motoHandler.HandleCollection)
	mux.HandleFunc("/api/motorcycles/", motoHandler.HandleItem("/api/motorcycles/"))
	mux.HandleFunc("/api/trucks", truckHandler.HandleCollection)
	mux.HandleFunc("/api/trucks/", truckHandler.HandleItem("/api/trucks/"))
	mux.HandleFunc("/api/customers", customerHandler.HandleCollection)
	mux.HandleFunc("/api/customers/", customerHandler.HandleItem)
	mux.HandleFunc("/api/bookings", bookingHandler.HandleCollection)
	mux.HandleFunc("/api/bookings/quote", bookingHandler.Quote)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()

	handler := rateLimiter.RateLimit(100, 60)(authMiddleware.Authenticate(mux))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("Rental management server listening")
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

// seedAdminAccount creates the bootstrap admin so the API is usable on a
// fresh start. Credentials come from ADMIN_USERNAME and ADMIN_PASSWORD.
func seedAdminAccount(authService *auth.Service, accounts *repo.AccountRepository) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin-change-me"
	}

	hash, err := authService.HashPassword(password)
	if err != nil {
		return err
	}

	return accounts.Save(&models.Account{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        "admin@rental.local",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
	})
}
