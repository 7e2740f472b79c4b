package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/tacworldhq/storefront-backend/pkg/enums"
)

// ProductOption describes one configurable axis of a product (draw hand,
// leather finish). Values is the closed list of allowed choices.
type ProductOption struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Product is an immutable catalog record. Instances are created once at
// process start and never mutated afterwards.
type Product struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Category    enums.HolsterCategory `json:"category"`
	Price       decimal.Decimal       `json:"price"`
	Description string                `json:"description"`
	Image       string                `json:"image"`
	Options     []ProductOption       `json:"options"`
	Features    []string              `json:"features"`
	Rating      float64               `json:"rating"`
	Reviews     int                   `json:"reviews"`
	BestSeller  bool                  `json:"is_best_seller,omitempty"`
}

// Option returns the declared option with the given id, if any.
func (p Product) Option(id string) (ProductOption, bool) {
	for _, opt := range p.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return ProductOption{}, false
}

// AllowsValue reports whether value is an allowed choice for the option.
func (o ProductOption) AllowsValue(value string) bool {
	for _, v := range o.Values {
		if v == value {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so cart snapshots are insulated from the catalog.
func (p Product) Clone() Product {
	out := p
	out.Options = make([]ProductOption, len(p.Options))
	for i, opt := range p.Options {
		values := make([]string, len(opt.Values))
		copy(values, opt.Values)
		out.Options[i] = ProductOption{ID: opt.ID, Name: opt.Name, Values: values}
	}
	out.Features = make([]string, len(p.Features))
	copy(out.Features, p.Features)
	return out
}
