package configurator

import (
	"strings"
	"sync"

	"github.com/tacworldhq/storefront-backend/internal/advisor"
	"github.com/tacworldhq/storefront-backend/internal/catalog"
	"github.com/tacworldhq/storefront-backend/pkg/enums"
	apperrors "github.com/tacworldhq/storefront-backend/pkg/errors"
)

// State is a session's configurator: the active category filter, the product
// whose detail view is open, the manufacturer/model pair and the cached
// generated preview for that pair. All methods are safe for concurrent use.
type State struct {
	store *catalog.Store

	mu           sync.Mutex
	category     enums.HolsterCategory
	selected     *catalog.Product
	manufacturer string
	model        string
	preview      *advisor.Preview
}

// Snapshot is the renderable configurator state.
type Snapshot struct {
	Category     enums.HolsterCategory `json:"category"`
	Selected     *catalog.Product      `json:"selected_product,omitempty"`
	Manufacturer string                `json:"manufacturer"`
	Model        string                `json:"model"`
	Preview      *advisor.Preview      `json:"preview,omitempty"`
}

func New(store *catalog.Store) *State {
	return &State{
		store:    store,
		category: enums.HolsterCategoryAll,
	}
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Category:     s.category,
		Selected:     s.selected,
		Manufacturer: s.manufacturer,
		Model:        s.model,
		Preview:      s.preview,
	}
}

// SetCategory switches the browse filter. Unknown values are rejected rather
// than passed through; "all" is the reset.
func (s *State) SetCategory(raw string) error {
	category := enums.ParseCategoryFilter(raw)
	if category != enums.HolsterCategoryAll && !category.IsValid() {
		return apperrors.New(apperrors.CodeValidation, "unknown category").
			WithDetails(map[string]any{"category": raw})
	}
	s.mu.Lock()
	s.category = category
	s.mu.Unlock()
	return nil
}

// Select opens the detail view on a catalog product.
func (s *State) Select(productID string) (catalog.Product, error) {
	product, ok := s.store.GetProduct(productID)
	if !ok {
		return catalog.Product{}, apperrors.New(apperrors.CodeNotFound, "product not found").
			WithDetails(map[string]any{"product_id": productID})
	}
	s.mu.Lock()
	s.selected = &product
	s.mu.Unlock()
	return product, nil
}

// Close dismisses the detail view. Idempotent.
func (s *State) Close() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

// SetManufacturer starts a fresh firearm selection: the model is reset and
// any generated preview belongs to the old pair, so it is dropped too.
func (s *State) SetManufacturer(manufacturer string) error {
	manufacturer = strings.TrimSpace(manufacturer)
	if manufacturer == "" {
		return apperrors.New(apperrors.CodeValidation, "manufacturer is required")
	}
	s.mu.Lock()
	s.manufacturer = manufacturer
	s.model = ""
	s.preview = nil
	s.mu.Unlock()
	return nil
}

// SetModel completes the pair. A model without a manufacturer is rejected; a
// model change invalidates the preview of the previous pair.
func (s *State) SetModel(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return apperrors.New(apperrors.CodeValidation, "model is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.manufacturer == "" {
		return apperrors.New(apperrors.CodeValidation, "select a manufacturer first")
	}
	s.model = model
	s.preview = nil
	return nil
}

// Firearm returns the current pair.
func (s *State) Firearm() (manufacturer, model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manufacturer, s.model
}

// SubmitFit resolves the current pair to a recommendation and opens its
// detail view. Unknown pairs still resolve; an incomplete pair does not.
func (s *State) SubmitFit() (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.manufacturer == "" || s.model == "" {
		return catalog.Product{}, apperrors.New(apperrors.CodeValidation, "manufacturer and model are required").
			WithDetails(map[string]any{"manufacturer": s.manufacturer, "model": s.model})
	}
	match := s.store.Recommend(s.manufacturer, s.model)
	s.selected = &match
	return match, nil
}

// StorePreview writes a generated preview back into the slot it was requested
// for. A result that arrives after the pair changed is stale and discarded;
// the return reports whether the write landed.
func (s *State) StorePreview(manufacturer, model string, preview *advisor.Preview) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.manufacturer != manufacturer || s.model != model {
		return false
	}
	s.preview = preview
	return true
}

// Preview returns the cached preview for the current pair, nil when none.
func (s *State) Preview() *advisor.Preview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview
}
