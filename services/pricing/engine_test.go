package pricing

import (
	"testing"

	"quickdrop/models"
	"quickdrop/services/catalog"
)

func newTestEngine() *Engine {
	return NewEngine(catalog.New())
}

func draftWithPackage(t models.ServiceType, packageName string) *models.BookingDraft {
	d := models.NewBookingDraft("test-session")
	d.ServiceType = t
	if packageName != "" {
		cat := catalog.New()
		pkg, ok := cat.Package(t, packageName)
		if !ok {
			panic("unknown test package " + packageName)
		}
		d.SelectedPackage = &pkg
	}
	return d
}

func TestPriceOfDropdown(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name   string
		option string
		want   float64
	}{
		{"default is standard", "", 0},
		{"standard", "standard", 0},
		{"next day", "next-day", 30},
		{"same day", "same-day", 60},
		{"unknown option", "teleport", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draftWithPackage(models.ServiceTypeDelivery, "Small Package")
			if tt.option != "" {
				d.SelectedAddOns = append(d.SelectedAddOns, models.SelectedAddOn{
					ID: "rush-delivery", Name: "Rush Delivery", Option: tt.option,
				})
			}
			if got := e.PriceOf(d, "rush-delivery", 0); got != tt.want {
				t.Errorf("PriceOf(rush-delivery, option=%q) = %v, want %v", tt.option, got, tt.want)
			}
		})
	}
}

func TestPriceOfInput(t *testing.T) {
	e := newTestEngine()
	d := draftWithPackage(models.ServiceTypeDelivery, "Small Package")

	tests := []struct {
		addOnID  string
		quantity int
		want     float64
	}{
		{"stair-fees", 1, 10},
		{"stair-fees", 3, 30},
		{"extra-stops", 2, 40},
		{"extra-stops", 3, 60},
	}
	for _, tt := range tests {
		if got := e.PriceOf(d, tt.addOnID, tt.quantity); got != tt.want {
			t.Errorf("PriceOf(%s, qty=%d) = %v, want %v", tt.addOnID, tt.quantity, got, tt.want)
		}
	}
}

func TestPriceOfTieredToggle(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		packageName string
		want        float64
	}{
		{"", 15}, // no package selected falls back to the low tier
		{"Small Package", 15},
		{"Medium Package", 15},
		{"Large Package", 25},
		{"Premium Package", 25},
	}
	for _, tt := range tests {
		d := draftWithPackage(models.ServiceTypeDelivery, tt.packageName)
		if got := e.PriceOf(d, "packaging-removal", 0); got != tt.want {
			t.Errorf("PriceOf(packaging-removal, pkg=%q) = %v, want %v", tt.packageName, got, tt.want)
		}
	}
}

func TestPriceOfFlatToggle(t *testing.T) {
	e := newTestEngine()
	d := draftWithPackage(models.ServiceTypeDelivery, "Small Package")
	if got := e.PriceOf(d, "after-hours-delivery", 0); got != 25 {
		t.Errorf("PriceOf(after-hours-delivery) = %v, want 25", got)
	}
}

func TestPriceOfUpsell(t *testing.T) {
	e := newTestEngine()
	d := draftWithPackage(models.ServiceTypeDelivery, "Small Package")

	if got := e.PriceOf(d, "old-furniture-removal", 0); got != 0 {
		t.Errorf("PriceOf(old-furniture-removal) before selection = %v, want 0", got)
	}

	d.SelectedAddOns = append(d.SelectedAddOns, models.SelectedAddOn{
		ID: "old-furniture-removal", Name: "Old Furniture Removal", Price: 80,
	})
	if got := e.PriceOf(d, "old-furniture-removal", 0); got != 80 {
		t.Errorf("PriceOf(old-furniture-removal) = %v, want the stored 80", got)
	}
}

func TestPriceOfUnknownAddOn(t *testing.T) {
	e := newTestEngine()
	d := draftWithPackage(models.ServiceTypeDelivery, "Small Package")
	if got := e.PriceOf(d, "jetpack-shipping", 2); got != 0 {
		t.Errorf("PriceOf(unknown) = %v, want 0", got)
	}
}

func TestTotalOf(t *testing.T) {
	e := newTestEngine()

	// Medium Package ($110) + one extra stop ($20) + packaging removal at the
	// low tier ($15) = $145.
	d := draftWithPackage(models.ServiceTypeDelivery, "Medium Package")
	d.SelectedAddOns = []models.SelectedAddOn{
		{ID: "extra-stops", Name: "Extra Stops", Quantity: 1, Price: 20},
		{ID: "packaging-removal", Name: "Packaging Removal", Price: 15},
	}
	if got := e.TotalOf(d); got != 145 {
		t.Errorf("TotalOf() = %v, want 145", got)
	}
}

func TestTotalOfWithoutPackage(t *testing.T) {
	e := newTestEngine()
	d := models.NewBookingDraft("test-session")
	d.SelectedAddOns = []models.SelectedAddOn{
		{ID: "after-hours-delivery", Name: "After-Hours Delivery", Price: 25},
	}
	if got := e.TotalOf(d); got != 25 {
		t.Errorf("TotalOf() without a package = %v, want 25", got)
	}
}
