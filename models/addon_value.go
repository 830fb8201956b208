package models

// AddOnValue is the tagged value accompanying an add-on selection. Exactly one
// variant is meaningful per add-on kind: a dropdown carries the chosen option,
// an input carries a quantity, an upsell carries its caller-supplied price and
// a plain toggle carries nothing.
type AddOnValue struct {
	Kind     AddOnKind
	Option   string
	Quantity int
	Price    float64
}

// DropdownValue selects a dropdown option by its value string.
func DropdownValue(option string) AddOnValue {
	return AddOnValue{Kind: AddOnKindDropdown, Option: option}
}

// QuantityValue sets the unit count for quantity-priced add-ons.
func QuantityValue(n int) AddOnValue {
	return AddOnValue{Kind: AddOnKindInput, Quantity: n}
}

// UpsellValue carries the price chosen from an upsell menu. Upsell prices are
// never derived by the pricing engine; they are stored as supplied.
func UpsellValue(price float64) AddOnValue {
	return AddOnValue{Kind: AddOnKindUpsell, Price: price}
}

// FlagValue is the value for plain flat-fee toggles.
func FlagValue() AddOnValue {
	return AddOnValue{Kind: AddOnKindToggle}
}
