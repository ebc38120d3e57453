package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/models"
	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/service"
)

// CustomerHandler handles customer registration and lookup requests
type CustomerHandler struct {
	customers *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

type customerRequest struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	LicenseNumber string            `json:"license_number"`
	Contact       map[string]string `json:"contact,omitempty"`
}

type customerResponse struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	LicenseNumber string            `json:"license_number"`
	Contact       map[string]string `json:"contact"`
	Bookings      int               `json:"bookings"`
}

func toCustomerResponse(c *models.Customer) customerResponse {
	return customerResponse{
		ID:            c.CustomerID(),
		Name:          c.CustomerName(),
		LicenseNumber: c.LicenseNumber(),
		Contact:       c.ContactInfo(),
		Bookings:      len(c.RentalHistory()),
	}
}

// HandleCollection serves /api/customers: GET lists every customer, POST
// registers a new one.
func (h *CustomerHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		customers := h.customers.GetAllCustomers()
		resp := make([]customerResponse, 0, len(customers))
		for _, c := range customers {
			resp = append(resp, toCustomerResponse(c))
		}
		writeJSON(w, http.StatusOK, resp)
	case http.MethodPost:
		h.register(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleItem serves /api/customers/{id} and /api/customers/{id}/history.
func (h *CustomerHandler) HandleItem(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/customers/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		http.Error(w, "Customer ID required", http.StatusBadRequest)
		return
	}

	if sub == "history" {
		h.history(w, r, id)
		return
	}
	if sub != "" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		c, ok := h.customers.GetCustomerByID(id)
		if !ok {
			http.Error(w, "Customer not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toCustomerResponse(c))
	case http.MethodPut:
		h.updateContact(w, r, id)
	case http.MethodDelete:
		if !h.customers.CancelCustomer(id) {
			http.Error(w, "Customer not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Customer deleted"})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *CustomerHandler) register(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req customerRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	c, err := models.NewCustomer(req.ID, req.Name, req.LicenseNumber)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	for kind, value := range req.Contact {
		c.SetContact(kind, value)
	}

	if !h.customers.RegisterCustomer(c) {
		http.Error(w, "Customer ID already registered", http.StatusConflict)
		return
	}

	writeJSON(w, http.StatusCreated, toCustomerResponse(c))
}

func (h *CustomerHandler) updateContact(w http.ResponseWriter, r *http.Request, id string) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req struct {
		Contact map[string]string `json:"contact"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	c, ok := h.customers.GetCustomerByID(id)
	if !ok {
		http.Error(w, "Customer not found", http.StatusNotFound)
		return
	}

	for kind, value := range req.Contact {
		c.SetContact(kind, value)
	}
	if !h.customers.UpdateCustomer(c) {
		http.Error(w, "Failed to update customer", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(c))
}

func (h *CustomerHandler) history(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := h.customers.GetCustomerByID(id); !ok {
		http.Error(w, "Customer not found", http.StatusNotFound)
		return
	}

	bookings := h.customers.GetCustomerBookings(id)
	resp := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, toBookingResponse(b))
	}
	writeJSON(w, http.StatusOK, resp)
}
