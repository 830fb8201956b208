package pricing

import (
	"quickdrop/models"
	"quickdrop/services/catalog"
)

// Engine computes add-on prices and booking totals from the catalog and the
// draft's current selections. All methods are pure: same catalog, same draft,
// same answer.
type Engine struct {
	Catalog *catalog.Catalog
}

// NewEngine returns a pricing engine over the given catalog.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{Catalog: c}
}

// PriceOf resolves the current price of an add-on for the draft. Quantity is
// taken as given; clamping to the add-on's allowed range is the caller's job.
func (e *Engine) PriceOf(d *models.BookingDraft, addOnID string, quantity int) float64 {
	addOn, ok := e.Catalog.AddOn(addOnID)
	if !ok {
		return 0
	}

	switch addOn.Kind {
	case models.AddOnKindDropdown:
		// Price of the currently chosen option; "standard" when none chosen yet.
		chosen := "standard"
		if sa := d.FindAddOn(addOnID); sa != nil && sa.Option != "" {
			chosen = sa.Option
		}
		if opt, ok := addOn.Option(chosen); ok {
			return opt.Price
		}
		return 0

	case models.AddOnKindInput:
		return addOn.BasePrice * float64(quantity)

	case models.AddOnKindUpsell:
		// Upsell prices are supplied by the caller at selection time and
		// echoed back, never derived.
		if sa := d.FindAddOn(addOnID); sa != nil {
			return sa.Price
		}
		return 0

	case models.AddOnKindToggle:
		if addOn.PriceRange != nil {
			return e.tieredPrice(addOn, d)
		}
		return addOn.BasePrice

	default:
		return addOn.BasePrice
	}
}

// tieredPrice resolves a package-size-dependent price by the ordinal position
// of the selected package in the service type's lineup: the two smallest
// packages share the low tier, everything above shares the high tier. An
// unknown or missing package falls back to the low tier.
func (e *Engine) tieredPrice(addOn *models.AddOn, d *models.BookingDraft) float64 {
	if d.SelectedPackage == nil {
		return addOn.PriceRange.Low
	}
	idx := e.Catalog.PackageIndex(d.ServiceType, d.SelectedPackage.Name)
	if idx >= 2 {
		return addOn.PriceRange.High
	}
	return addOn.PriceRange.Low
}

// TotalOf is the exact arithmetic sum of the package base price (zero when no
// package is selected) and every selected add-on's stored price. No taxes, no
// rounding, no hidden fees.
func (e *Engine) TotalOf(d *models.BookingDraft) float64 {
	total := 0.0
	if d.SelectedPackage != nil {
		total = d.SelectedPackage.BasePrice
	}
	for _, sa := range d.SelectedAddOns {
		total += sa.Price
	}
	return total
}
