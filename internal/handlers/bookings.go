package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/models"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/service"
)

const bookingDateLayout = "2006-01-02"

// BookingHandler handles booking and quoting requests. It spans all three
// fleets because a booking may reference any vehicle kind.
type BookingHandler struct {
	bookings  *service.BookingService
	customers *service.CustomerService
	fleets    []*service.VehicleService
}

// NewBookingHandler creates a new booking handler over the car, motorcycle
// and truck fleets.
func NewBookingHandler(bookings *service.BookingService, customers *service.CustomerService, fleets ...*service.VehicleService) *BookingHandler {
	return &BookingHandler{
		bookings:  bookings,
		customers: customers,
		fleets:    fleets,
	}
}

type bookingRequest struct {
	VehicleID  string `json:"vehicle_id"`
	CustomerID string `json:"customer_id"`
	RentalDate string `json:"rental_date"`
	ReturnDate string `json:"return_date"`
}

type bookingResponse struct {
	VehicleID    string  `json:"vehicle_id"`
	CustomerID   string  `json:"customer_id"`
	VehicleModel string  `json:"vehicle_model"`
	CustomerName string  `json:"customer_name"`
	RentalDate   string  `json:"rental_date"`
	ReturnDate   string  `json:"return_date"`
	Duration     int     `json:"duration_days"`
	Cost         float64 `json:"cost,omitempty"`
}

func toBookingResponse(b *models.Booking) bookingResponse {
	return bookingResponse{
		VehicleID:    b.Vehicle().VehicleID(),
		CustomerID:   b.Customer().CustomerID(),
		VehicleModel: b.Vehicle().Model(),
		CustomerName: b.Customer().CustomerName(),
		RentalDate:   b.RentalDate().Format(bookingDateLayout),
		ReturnDate:   b.ReturnDate().Format(bookingDateLayout),
		Duration:     b.Duration(),
	}
}

// HandleCollection serves /api/bookings: GET lists bookings (optionally
// filtered by vehicle_id or customer_id), POST creates a booking, DELETE
// cancels the booking identified by the vehicle_id and customer_id query
// parameters.
func (h *BookingHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	case http.MethodDelete:
		h.cancel(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Quote serves POST /api/bookings/quote. The quoted booking does not have
// to exist; the request carries the full rental period.
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	b, errMsg, status := h.buildBooking(r)
	if b == nil {
		http.Error(w, errMsg, status)
		return
	}

	resp := toBookingResponse(b)
	resp.Cost = h.bookings.Quote(b)
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var bookings []*models.Booking
	switch {
	case q.Get("vehicle_id") != "":
		bookings = h.bookings.GetBookingsByVehicle(q.Get("vehicle_id"))
	case q.Get("customer_id") != "":
		bookings = h.bookings.GetBookingsByCustomer(q.Get("customer_id"))
	default:
		bookings = h.bookings.GetAllBookings()
	}

	resp := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, toBookingResponse(b))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) create(w http.ResponseWriter, r *http.Request) {
	b, errMsg, status := h.buildBooking(r)
	if b == nil {
		http.Error(w, errMsg, status)
		return
	}

	if !b.Vehicle().IsAvailable() {
		http.Error(w, "Vehicle is not available", http.StatusConflict)
		return
	}

	if !h.bookings.SaveBooking(b) {
		http.Error(w, "Failed to save booking", http.StatusInternalServerError)
		return
	}
	h.customers.AddBookingToHistory(b.Customer().CustomerID(), b)
	b.Vehicle().SetAvailable(false)

	resp := toBookingResponse(b)
	resp.Cost = h.bookings.Quote(b)
	writeJSON(w, http.StatusCreated, resp)
}

func (h *BookingHandler) cancel(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.URL.Query().Get("vehicle_id")
	customerID := r.URL.Query().Get("customer_id")
	if vehicleID == "" || customerID == "" {
		http.Error(w, "vehicle_id and customer_id are required", http.StatusBadRequest)
		return
	}

	b, ok := h.bookings.GetBookingByVehicleAndCustomer(vehicleID, customerID)
	if !ok {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	if !h.bookings.CancelBooking(vehicleID, customerID) {
		http.Error(w, "Failed to cancel booking", http.StatusInternalServerError)
		return
	}
	b.Vehicle().SetAvailable(true)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking cancelled"})
}

// buildBooking resolves the vehicle and customer referenced by the request
// body and assembles a validated booking. On failure it returns a nil
// booking with the message and status to respond with.
func (h *BookingHandler) buildBooking(r *http.Request) (*models.Booking, string, int) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, "Failed to read request body", http.StatusBadRequest
	}

	var req bookingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, "Invalid JSON", http.StatusBadRequest
	}

	rentalDate, err := time.Parse(bookingDateLayout, req.RentalDate)
	if err != nil {
		return nil, "Invalid rental_date, expected YYYY-MM-DD", http.StatusBadRequest
	}
	returnDate, err := time.Parse(bookingDateLayout, req.ReturnDate)
	if err != nil {
		return nil, "Invalid return_date, expected YYYY-MM-DD", http.StatusBadRequest
	}

	vehicle, ok := h.findVehicle(req.VehicleID)
	if !ok {
		return nil, "Vehicle not found", http.StatusNotFound
	}
	customer, ok := h.customers.GetCustomerByID(req.CustomerID)
	if !ok {
		return nil, "Customer not found", http.StatusNotFound
	}

	b, err := models.NewBooking(vehicle, customer, rentalDate, returnDate)
	if err != nil {
		return nil, err.Error(), http.StatusBadRequest
	}
	return b, "", 0
}

func (h *BookingHandler) findVehicle(id string) (models.Vehicle, bool) {
	for _, fleet := range h.fleets {
		if v, ok := fleet.GetVehicleByID(id); ok {
			return v, true
		}
	}
	return nil, false
}
