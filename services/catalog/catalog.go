package catalog

import "quickdrop/models"

// Catalog is the static reference data for the booking funnel: packages per
// service type, add-on definitions, upsell menu and policy text. Loaded once
// at startup and consumed read-only; a catalog change is a deploy-time event.
type Catalog struct {
	deliveryPackages []models.Package
	removalPackages  []models.Package
	addOns           []models.AddOn
	upsellMenu       []models.UpsellOption
	timeWindows      []string
	cancellation     models.Policy
	refund           models.Policy
}

// New returns the catalog with the current package and add-on lineup.
func New() *Catalog {
	return &Catalog{
		deliveryPackages: []models.Package{
			{Name: "Small Package", BasePrice: 65, Description: "Best for single chairs, small desks. (Delivery only. Assembly available as an add on)"},
			{Name: "Medium Package", BasePrice: 110, Description: "Best for standard bookcases, medium dining sets. (Delivery only. Assembly available as an add on)"},
			{Name: "Large Package", BasePrice: 160, Description: "Best for large sectionals, bedroom sets. (Delivery only. Assembly available as an add on)"},
			{Name: "Premium Package", BasePrice: 220, Description: "Best for heavy, complex, oversized items. (Delivery only. Assembly available as an add on)"},
		},
		removalPackages: []models.Package{
			{Name: "Small Removal", BasePrice: 55, Description: "Single small item haul-away, curbside or ground floor."},
			{Name: "Medium Removal", BasePrice: 95, Description: "A few medium items, e.g. a dining set or bookcases."},
			{Name: "Large Removal", BasePrice: 145, Description: "Large sectionals, bedroom sets, multi-item removals."},
			{Name: "Premium Removal", BasePrice: 200, Description: "Heavy, complex or oversized item removals."},
		},
		addOns: []models.AddOn{
			{
				ID:          "rush-delivery",
				Name:        "Rush Delivery",
				BasePrice:   0, // price determined by dropdown option
				Description: "Price varies based on required urgency.",
				Kind:        models.AddOnKindDropdown,
				Options: []models.AddOnOption{
					{Value: "standard", Label: "Standard (No Rush Fee)", Price: 0},
					{Value: "next-day", Label: "Next Day (+$30)", Price: 30},
					{Value: "same-day", Label: "Same Day (+$60)", Price: 60},
				},
				Services: []models.ServiceType{models.ServiceTypeDelivery, models.ServiceTypeRemoval},
			},
			{
				ID:          "stair-fees",
				Name:        "Stair Fees",
				BasePrice:   10, // per extra flight
				Description: "Fee applies per flight beyond the ground floor.",
				Kind:        models.AddOnKindInput,
				MaxQuantity: 10,
				Services:    []models.ServiceType{models.ServiceTypeDelivery, models.ServiceTypeRemoval},
			},
			{
				ID:          "packaging-removal",
				Name:        "Packaging Removal",
				PriceRange:  &models.PriceRange{Low: 15, High: 25},
				Description: "Price varies based on the size of the package selected.",
				Kind:        models.AddOnKindToggle,
				Services:    []models.ServiceType{models.ServiceTypeDelivery},
			},
			{
				ID:          "extra-stops",
				Name:        "Extra Stops",
				BasePrice:   20, // per stop
				Description: "Price varies based on the number of additional stops.",
				Kind:        models.AddOnKindInput,
				MaxQuantity: 3,
				Services:    []models.ServiceType{models.ServiceTypeDelivery, models.ServiceTypeRemoval},
			},
			{
				ID:          "after-hours-delivery",
				Name:        "After-Hours Delivery",
				BasePrice:   25, // flat fee
				Description: "Flat fee for service outside standard business hours.",
				Kind:        models.AddOnKindToggle,
				Services:    []models.ServiceType{models.ServiceTypeDelivery, models.ServiceTypeRemoval},
			},
			{
				ID:          "old-furniture-removal",
				Name:        "Old Furniture Removal",
				BasePrice:   0, // upsell, caller-priced
				Description: "Customers must be prompted with an upsell option for this service.",
				Kind:        models.AddOnKindUpsell,
				Services:    []models.ServiceType{models.ServiceTypeDelivery},
			},
		},
		upsellMenu: []models.UpsellOption{
			{Label: "Small Item (e.g., Nightstand)", Price: 30},
			{Label: "Medium Item (e.g., Small Chair)", Price: 50},
			{Label: "Large Item (e.g., Dresser)", Price: 80},
			{Label: "Oversized Item (e.g., Sofa)", Price: 120},
		},
		timeWindows: []string{"8 AM - 12 PM", "12 PM - 4 PM", "4 PM - 8 PM"},
		cancellation: models.Policy{
			Title: "Cancellation Policy",
			Details: []string{
				"24+ Hours Notice: 100% Refund (minus 3% processing fee).",
				"Less than 24 Hours: 50% Refund.",
				"At Arrival: 0% Refund.",
			},
		},
		refund: models.Policy{
			Title: "Refund Policy",
			Details: []string{
				"No refunds on completed jobs.",
				"100% refund processed within 3-5 days if the job is not completed by QuickDrop SD.",
			},
		},
	}
}

// PackagesFor returns the package lineup for a service type.
func (c *Catalog) PackagesFor(s models.ServiceType) []models.Package {
	if s == models.ServiceTypeRemoval {
		return c.removalPackages
	}
	return c.deliveryPackages
}

// Package looks up a package by name within a service type's lineup.
func (c *Catalog) Package(s models.ServiceType, name string) (models.Package, bool) {
	for _, p := range c.PackagesFor(s) {
		if p.Name == name {
			return p, true
		}
	}
	return models.Package{}, false
}

// PackageIndex returns the ordinal position of the named package in the
// service type's lineup, or -1 when absent. Package-size-tiered pricing
// keys off this index.
func (c *Catalog) PackageIndex(s models.ServiceType, name string) int {
	for i, p := range c.PackagesFor(s) {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// AddOn looks up an add-on definition by ID.
func (c *Catalog) AddOn(id string) (*models.AddOn, bool) {
	for i := range c.addOns {
		if c.addOns[i].ID == id {
			return &c.addOns[i], true
		}
	}
	return nil, false
}

// AddOnsFor returns the add-ons offered for a service type.
func (c *Catalog) AddOnsFor(s models.ServiceType) []models.AddOn {
	var out []models.AddOn
	for _, a := range c.addOns {
		if a.AppliesTo(s) {
			out = append(out, a)
		}
	}
	return out
}

// UpsellMenu returns the fixed price menu for caller-priced upsell add-ons.
func (c *Catalog) UpsellMenu() []models.UpsellOption { return c.upsellMenu }

// TimeWindows returns the bookable time windows.
func (c *Catalog) TimeWindows() []string { return c.timeWindows }

// CancellationPolicy returns the customer-facing cancellation terms.
func (c *Catalog) CancellationPolicy() models.Policy { return c.cancellation }

// RefundPolicy returns the customer-facing refund terms.
func (c *Catalog) RefundPolicy() models.Policy { return c.refund }
