package models

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrBrandNameEmpty     = errors.New("brand name cannot be empty")
	ErrUnknownBrand       = errors.New("brand is not registered")
	ErrInvalidCategoryTag = errors.New("category tag must belong to the car, motorcycle or truck category set")
)

// Brand holds manufacturer metadata shared by many vehicles. Vehicles
// reference a brand by pointer; the reverse association lives in
// BrandRegistry, not on the brand itself.
type Brand struct {
	Name            string
	CountryOfOrigin string
	Year            int

	categories map[string]struct{}
}

// NewBrand creates a brand. The name is required; country and founding
// year are plain metadata and not validated.
func NewBrand(name string, year int, countryOfOrigin string) (*Brand, error) {
	if name == "" {
		return nil, ErrBrandNameEmpty
	}
	return &Brand{
		Name:            name,
		CountryOfOrigin: countryOfOrigin,
		Year:            year,
		categories:      make(map[string]struct{}),
	}, nil
}

// AddCategory tags the brand with a vehicle category. Only members of the
// three closed category sets are accepted.
func (b *Brand) AddCategory(tag string) error {
	if !IsValidCarCategory(CarCategory(tag)) &&
		!IsValidMotorcycleCategory(MotorcycleCategory(tag)) &&
		!IsValidTruckCategory(TruckCategory(tag)) {
		return fmt.Errorf("%w: %q", ErrInvalidCategoryTag, tag)
	}
	if b.categories == nil {
		b.categories = make(map[string]struct{})
	}
	b.categories[tag] = struct{}{}
	return nil
}

// Categories returns the brand's category tags in sorted order.
func (b *Brand) Categories() []string {
	tags := make([]string, 0, len(b.categories))
	for tag := range b.categories {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// BrandRegistry is the single authority for the brand-to-vehicle
// association. It replaces mutable back-pointers between brands and
// vehicles with an explicit name-to-ID index.
type BrandRegistry struct {
	mu       sync.RWMutex
	brands   map[string]*Brand
	vehicles map[string]map[string]struct{}
}

// NewBrandRegistry creates an empty registry.
func NewBrandRegistry() *BrandRegistry {
	return &BrandRegistry{
		brands:   make(map[string]*Brand),
		vehicles: make(map[string]map[string]struct{}),
	}
}

// Register adds a brand to the registry. Registering the same brand again
// is a no-op; a different brand under an existing name is rejected.
func (r *BrandRegistry) Register(b *Brand) error {
	if b == nil || b.Name == "" {
		return ErrBrandNameEmpty
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.brands[b.Name]; ok && existing != b {
		return fmt.Errorf("brand %q is already registered", b.Name)
	}
	r.brands[b.Name] = b
	if r.vehicles[b.Name] == nil {
		r.vehicles[b.Name] = make(map[string]struct{})
	}
	return nil
}

// Brand looks up a registered brand by name.
func (r *BrandRegistry) Brand(name string) (*Brand, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.brands[name]
	return b, ok
}

// Brands returns every registered brand, sorted by name.
func (r *BrandRegistry) Brands() []*Brand {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.brands))
	for name := range r.brands {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*Brand, 0, len(names))
	for _, name := range names {
		out = append(out, r.brands[name])
	}
	return out
}

// Associate records that a vehicle uses a registered brand.
func (r *BrandRegistry) Associate(brandName, vehicleID string) error {
	if vehicleID == "" {
		return errors.New("vehicle ID cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.brands[brandName]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBrand, brandName)
	}
	r.vehicles[brandName][vehicleID] = struct{}{}
	return nil
}

// Dissociate removes a vehicle from a brand's association set. Unknown
// brands or vehicles are ignored.
func (r *BrandRegistry) Dissociate(brandName, vehicleID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ids, ok := r.vehicles[brandName]; ok {
		delete(ids, vehicleID)
	}
}

// VehicleIDs returns the IDs of all vehicles associated with a brand,
// sorted, as a copy.
func (r *BrandRegistry) VehicleIDs(brandName string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.vehicles[brandName]))
	for id := range r.vehicles[brandName] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
