package models

// ServiceType selects which package catalog and add-on set apply to a booking.
type ServiceType string

const (
	ServiceTypeDelivery ServiceType = "delivery"
	ServiceTypeRemoval  ServiceType = "removal"
)

// Valid reports whether s is a known service type.
func (s ServiceType) Valid() bool {
	return s == ServiceTypeDelivery || s == ServiceTypeRemoval
}

// Package is an immutable catalog entry selected mutually-exclusively per booking.
type Package struct {
	Name        string  `bson:"name" json:"name"`
	BasePrice   float64 `bson:"base_price" json:"basePrice"`
	Description string  `bson:"description" json:"description"`
}

// AddOnKind determines how an add-on is priced and which value it accepts.
type AddOnKind string

const (
	AddOnKindToggle   AddOnKind = "toggle"
	AddOnKindDropdown AddOnKind = "dropdown"
	AddOnKindInput    AddOnKind = "input"
	AddOnKindUpsell   AddOnKind = "upsell"
)

// AddOnOption is a selectable dropdown choice with its own price.
type AddOnOption struct {
	Value string  `json:"value"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// PriceRange holds the low/high tier prices for package-size-dependent add-ons.
type PriceRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// AddOn is an immutable catalog definition of an optional extra service.
type AddOn struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	BasePrice   float64       `json:"basePrice"`
	PriceRange  *PriceRange   `json:"priceRange,omitempty"`
	Description string        `json:"description"`
	Kind        AddOnKind     `json:"kind"`
	Options     []AddOnOption `json:"options,omitempty"`
	MaxQuantity int           `json:"maxQuantity,omitempty"`
	Services    []ServiceType `json:"applicableServices"`
}

// AppliesTo reports whether the add-on is offered for the given service type.
func (a *AddOn) AppliesTo(s ServiceType) bool {
	for _, svc := range a.Services {
		if svc == s {
			return true
		}
	}
	return false
}

// Option returns the dropdown option matching value.
func (a *AddOn) Option(value string) (AddOnOption, bool) {
	for _, opt := range a.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return AddOnOption{}, false
}

// UpsellOption is a fixed-menu price tier for caller-priced upsell add-ons.
type UpsellOption struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// Policy is a titled block of customer-facing policy text.
type Policy struct {
	Title   string   `json:"title"`
	Details []string `json:"details"`
}
