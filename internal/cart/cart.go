package cart

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tacworldhq/storefront-backend/internal/catalog"
	pkgerrors "github.com/tacworldhq/storefront-backend/pkg/errors"
)

// LineItem is a point-in-time snapshot of a product plus the options chosen
// at add time. The product is copied by value; later catalog changes never
// reach items already in the cart.
type LineItem struct {
	ID              uuid.UUID         `json:"id"`
	Product         catalog.Product   `json:"product"`
	SelectedOptions map[string]string `json:"selected_options"`
	Quantity        int               `json:"quantity"`
	AddedAt         time.Time         `json:"added_at"`
}

// Subtotal returns price × quantity for this line.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is an insertion-ordered collection of line items scoped to one
// storefront session. Methods are safe for interleaved handler calls.
type Cart struct {
	mu    sync.Mutex
	items []LineItem
}

func New() *Cart {
	return &Cart{}
}

// AddItem validates the option selection against the product's declared
// options, snapshots the product and appends a new line item with quantity 1.
// Every declared option needs exactly one allowed value; unknown option ids
// are rejected. Duplicate adds produce distinct, independently removable
// line items.
func (c *Cart) AddItem(product catalog.Product, selected map[string]string) (LineItem, error) {
	if err := validateSelection(product, selected); err != nil {
		return LineItem{}, err
	}

	chosen := make(map[string]string, len(selected))
	for k, v := range selected {
		chosen[k] = v
	}

	item := LineItem{
		ID:              uuid.New(),
		Product:         product.Clone(),
		SelectedOptions: chosen,
		Quantity:        1,
		AddedAt:         time.Now().UTC(),
	}

	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()
	return item, nil
}

// RemoveItem deletes the line item with the exact identity. Unknown ids are
// a no-op; UI double-clicks must not fail.
func (c *Cart) RemoveItem(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns the line items in insertion order.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total derives the sum of price × quantity over the current line items.
// Always recomputed, never cached.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Count returns the number of line items (the cart badge), not the quantity sum.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func validateSelection(product catalog.Product, selected map[string]string) error {
	details := map[string]string{}
	for _, opt := range product.Options {
		value, ok := selected[opt.ID]
		if !ok {
			details[opt.ID] = "selection required"
			continue
		}
		if !opt.AllowsValue(value) {
			details[opt.ID] = fmt.Sprintf("%q is not an allowed value", value)
		}
	}
	for id := range selected {
		if _, ok := product.Option(id); !ok {
			details[id] = "unknown option"
		}
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "incomplete option selection").WithDetails(details)
	}
	return nil
}
