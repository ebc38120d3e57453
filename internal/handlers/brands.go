package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/dyattakorah-github/vehicle-rental-mgt-system/internal/models"
)

// BrandHandler handles manufacturer brand requests
type BrandHandler struct {
	brands *models.BrandRegistry
}

// NewBrandHandler creates a new brand handler
func NewBrandHandler(brands *models.BrandRegistry) *BrandHandler {
	return &BrandHandler{brands: brands}
}

type brandRequest struct {
	Name            string   `json:"name"`
	Year            int      `json:"year"`
	CountryOfOrigin string   `json:"country_of_origin"`
	Categories      []string `json:"categories,omitempty"`
}

type brandResponse struct {
	Name            string   `json:"name"`
	Year            int      `json:"year"`
	CountryOfOrigin string   `json:"country_of_origin"`
	Categories      []string `json:"categories"`
	Vehicles        []string `json:"vehicles"`
}

func (h *BrandHandler) toBrandResponse(b *models.Brand) brandResponse {
	return brandResponse{
		Name:            b.Name,
		Year:            b.Year,
		CountryOfOrigin: b.CountryOfOrigin,
		Categories:      b.Categories(),
		Vehicles:        h.brands.VehicleIDs(b.Name),
	}
}

// HandleCollection serves /api/brands: GET lists registered brands, POST
// registers a new one.
func (h *BrandHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		brands := h.brands.Brands()
		resp := make([]brandResponse, 0, len(brands))
		for _, b := range brands {
			resp = append(resp, h.toBrandResponse(b))
		}
		writeJSON(w, http.StatusOK, resp)
	case http.MethodPost:
		h.register(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleItem serves GET /api/brands/{name}.
func (h *BrandHandler) HandleItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/brands/")
	if name == "" || strings.Contains(name, "/") {
		http.Error(w, "Brand name required", http.StatusBadRequest)
		return
	}

	b, ok := h.brands.Brand(name)
	if !ok {
		http.Error(w, "Brand not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, h.toBrandResponse(b))
}

func (h *BrandHandler) register(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req brandRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	b, err := models.NewBrand(req.Name, req.Year, req.CountryOfOrigin)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	for _, tag := range req.Categories {
		if err := b.AddCategory(tag); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if err := h.brands.Register(b); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	writeJSON(w, http.StatusCreated, h.toBrandResponse(b))
}
