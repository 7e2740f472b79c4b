package enums

import "fmt"

// HolsterCategory represents the canonical holster categories carried by the catalog.
type HolsterCategory string

const (
	HolsterCategoryIWB      HolsterCategory = "iwb_concealed"
	HolsterCategoryDuty     HolsterCategory = "duty"
	HolsterCategoryHybrid   HolsterCategory = "owb_hybrid"
	HolsterCategoryShoulder HolsterCategory = "shoulder_system"
	HolsterCategoryLeather  HolsterCategory = "premium_leather"
)

// HolsterCategoryAll is the browse filter sentinel meaning "no category filter".
// It is not a catalog category and never appears on a product.
const HolsterCategoryAll HolsterCategory = "all"

var validHolsterCategories = []HolsterCategory{
	HolsterCategoryIWB,
	HolsterCategoryDuty,
	HolsterCategoryHybrid,
	HolsterCategoryShoulder,
	HolsterCategoryLeather,
}

// String implements fmt.Stringer.
func (c HolsterCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known HolsterCategory.
func (c HolsterCategory) IsValid() bool {
	for _, candidate := range validHolsterCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// Label returns the storefront display name for the category.
func (c HolsterCategory) Label() string {
	switch c {
	case HolsterCategoryIWB:
		return "IWB Concealed"
	case HolsterCategoryDuty:
		return "Duty Holsters"
	case HolsterCategoryHybrid:
		return "OWB Hybrid"
	case HolsterCategoryShoulder:
		return "Shoulder Systems"
	case HolsterCategoryLeather:
		return "Premium Leather"
	case HolsterCategoryAll:
		return "All"
	}
	return string(c)
}

// ParseHolsterCategory converts raw input into a HolsterCategory.
func ParseHolsterCategory(value string) (HolsterCategory, error) {
	for _, candidate := range validHolsterCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid holster category %q", value)
}

// ParseCategoryFilter converts a browse filter value into a HolsterCategory,
// mapping the empty string to the "all" sentinel. Unknown values are returned
// as-is so that filtering yields an empty result rather than an error.
func ParseCategoryFilter(value string) HolsterCategory {
	if value == "" || value == string(HolsterCategoryAll) {
		return HolsterCategoryAll
	}
	return HolsterCategory(value)
}
