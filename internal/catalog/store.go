package catalog

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/tacworldhq/storefront-backend/pkg/enums"
)

// Store exposes the static product list and the manufacturer → gun model
// lookup table as read-only data. All accessors are safe for concurrent use
// because the underlying data never changes after New.
type Store struct {
	products      []Product
	byID          map[string]Product
	manufacturers []string
	gunModels     map[string][]string
}

// New validates the seed data and builds the catalog store. Duplicate product
// ids, empty option value lists, negative prices and unknown categories are
// all seed defects and fail startup.
func New(products []Product, manufacturers []string, gunModels map[string][]string) (*Store, error) {
	var verr error
	if len(products) == 0 {
		// Recommend falls back to products[0], so an empty seed can never ship.
		verr = multierr.Append(verr, fmt.Errorf("no products configured"))
	}
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		if p.ID == "" {
			verr = multierr.Append(verr, fmt.Errorf("product %q: missing id", p.Name))
			continue
		}
		if _, dup := byID[p.ID]; dup {
			verr = multierr.Append(verr, fmt.Errorf("product %q: duplicate id", p.ID))
		}
		if !p.Category.IsValid() {
			verr = multierr.Append(verr, fmt.Errorf("product %q: invalid category %q", p.ID, p.Category))
		}
		if p.Price.IsNegative() {
			verr = multierr.Append(verr, fmt.Errorf("product %q: negative price %s", p.ID, p.Price))
		}
		if p.Reviews < 0 {
			verr = multierr.Append(verr, fmt.Errorf("product %q: negative review count", p.ID))
		}
		for _, opt := range p.Options {
			if len(opt.Values) == 0 {
				verr = multierr.Append(verr, fmt.Errorf("product %q: option %q has no values", p.ID, opt.ID))
			}
		}
		byID[p.ID] = p
	}
	for _, make := range manufacturers {
		if len(gunModels[make]) == 0 {
			verr = multierr.Append(verr, fmt.Errorf("manufacturer %q: no models configured", make))
		}
	}
	if verr != nil {
		return nil, fmt.Errorf("catalog seed invalid: %w", verr)
	}
	return &Store{
		products:      products,
		byID:          byID,
		manufacturers: manufacturers,
		gunModels:     gunModels,
	}, nil
}

// NewFromSeed builds the store from the compiled-in catalog.
func NewFromSeed() (*Store, error) {
	return New(seedProducts(), seedManufacturers, seedGunModels)
}

// ListProducts returns all products in stable catalog order.
func (s *Store) ListProducts() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// FilterByCategory returns the products matching the category, preserving
// catalog order. The "all" sentinel returns everything; an unmatched category
// yields an empty slice, never an error.
func (s *Store) FilterByCategory(category enums.HolsterCategory) []Product {
	if category == enums.HolsterCategoryAll {
		return s.ListProducts()
	}
	out := []Product{}
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// GetProduct looks up a product by id.
func (s *Store) GetProduct(id string) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Manufacturers returns the supported firearm makes in configured order.
func (s *Store) Manufacturers() []string {
	out := make([]string, len(s.manufacturers))
	copy(out, s.manufacturers)
	return out
}

// ModelsFor returns the configured model list for a manufacturer. Unknown
// makes produce an empty slice so the configurator never fails on them.
func (s *Store) ModelsFor(manufacturer string) []string {
	models, ok := s.gunModels[manufacturer]
	if !ok {
		return []string{}
	}
	out := make([]string, len(models))
	copy(out, models)
	return out
}

// Recommend deterministically maps any firearm pair to a catalog product:
// the duty flagship when present, otherwise the first catalog entry.
func (s *Store) Recommend(manufacturer, model string) Product {
	if p, ok := s.byID[FlagshipProductID]; ok {
		return p
	}
	return s.products[0]
}
