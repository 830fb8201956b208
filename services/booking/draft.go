package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"quickdrop/models"
)

// CreateDraft starts a fresh draft session with defaults and stores it.
func (s *DefaultDraftService) CreateDraft(ctx context.Context) (*models.BookingDraft, error) {
	draft := models.NewBookingDraft(uuid.New().String())
	if err := s.Store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GetDraft returns the current draft for the session.
func (s *DefaultDraftService) GetDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	return s.Store.Get(ctx, sessionID)
}

// SetServiceType switches the draft between delivery and removal. Because the
// package lineup and applicable add-ons differ per service type, a change
// always clears the selected package and every selected add-on.
func (s *DefaultDraftService) SetServiceType(ctx context.Context, sessionID string, t models.ServiceType) (*models.BookingDraft, error) {
	if !t.Valid() {
		return nil, NewValidationError(fmt.Sprintf("unknown service type %q", t))
	}
	return s.mutate(ctx, sessionID, func(d *models.BookingDraft) error {
		if d.ServiceType == t {
			return nil
		}
		d.ServiceType = t
		d.SelectedPackage = nil
		d.SelectedAddOns = []models.SelectedAddOn{}
		return nil
	})
}

// SelectPackage sets the package and re-prices any selected add-on whose
// price depends on package size. All other add-on prices stay untouched.
func (s *DefaultDraftService) SelectPackage(ctx context.Context, sessionID, packageName string) (*models.BookingDraft, error) {
	return s.mutate(ctx, sessionID, func(d *models.BookingDraft) error {
		pkg, ok := s.Catalog.Package(d.ServiceType, packageName)
		if !ok {
			return NewValidationError(fmt.Sprintf("unknown package %q for %s service", packageName, d.ServiceType))
		}
		d.SelectedPackage = &pkg
		for i := range d.SelectedAddOns {
			def, ok := s.Catalog.AddOn(d.SelectedAddOns[i].ID)
			if !ok || def.PriceRange == nil {
				continue
			}
			d.SelectedAddOns[i].Price = s.Engine.PriceOf(d, def.ID, d.SelectedAddOns[i].Quantity)
		}
		return nil
	})
}

// ToggleAddOn adds, updates or removes an add-on selection. The value variant
// must match the add-on's declared kind. An unknown add-on ID is a no-op; an
// existing entry is updated in place so id-based identity is preserved.
func (s *DefaultDraftService) ToggleAddOn(ctx context.Context, sessionID, addOnID string, checked bool, value models.AddOnValue) (*models.BookingDraft, error) {
	return s.mutate(ctx, sessionID, func(d *models.BookingDraft) error {
		def, ok := s.Catalog.AddOn(addOnID)
		if !ok {
			return nil
		}

		if !checked {
			removeAddOn(d, addOnID)
			return nil
		}

		if !def.AppliesTo(d.ServiceType) {
			return NewValidationError(fmt.Sprintf("%s is not available for %s service", def.Name, d.ServiceType))
		}
		if value.Kind != def.Kind {
			return NewValidationError(fmt.Sprintf("%s expects a %s value", def.Name, def.Kind))
		}

		switch def.Kind {
		case models.AddOnKindDropdown:
			opt, known := def.Option(value.Option)
			price := 0.0
			if known {
				price = opt.Price
			}
			if sa := d.FindAddOn(addOnID); sa != nil {
				sa.Option = value.Option
				sa.Price = price
			} else {
				d.SelectedAddOns = append(d.SelectedAddOns, models.SelectedAddOn{
					ID: def.ID, Name: def.Name, Price: price, Option: value.Option,
				})
			}

		case models.AddOnKindInput:
			qty := clampQuantity(value.Quantity, def.MaxQuantity)
			price := def.BasePrice * float64(qty)
			if sa := d.FindAddOn(addOnID); sa != nil {
				sa.Quantity = qty
				sa.Price = price
			} else {
				d.SelectedAddOns = append(d.SelectedAddOns, models.SelectedAddOn{
					ID: def.ID, Name: def.Name, Price: price, Quantity: qty,
				})
			}

		case models.AddOnKindUpsell:
			// Caller-supplied price, stored verbatim.
			if sa := d.FindAddOn(addOnID); sa != nil {
				sa.Price = value.Price
			} else {
				d.SelectedAddOns = append(d.SelectedAddOns, models.SelectedAddOn{
					ID: def.ID, Name: def.Name, Price: value.Price,
				})
			}

		case models.AddOnKindToggle:
			price := s.Engine.PriceOf(d, addOnID, 0)
			if sa := d.FindAddOn(addOnID); sa != nil {
				sa.Price = price
			} else {
				d.SelectedAddOns = append(d.SelectedAddOns, models.SelectedAddOn{
					ID: def.ID, Name: def.Name, Price: price,
				})
			}
		}
		return nil
	})
}

// AddItem appends a booking item, assigning it an ID when the client did not.
func (s *DefaultDraftService) AddItem(ctx context.Context, sessionID string, item models.BookingItem) (*models.BookingDraft, error) {
	return s.mutate(ctx, sessionID, func(d *models.BookingDraft) error {
		if item.Name == "" {
			return NewValidationError("item name is required")
		}
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		d.BookingItems = append(d.BookingItems, item)
		return nil
	})
}

// UpdateItem merges the patch into the item with the given ID.
func (s *DefaultDraftService) UpdateItem(ctx context.Context, sessionID, itemID string, patch ItemPatch) (*models.BookingDraft, error) {
	return s.mutate(ctx, sessionID, func(d *models.BookingDraft) error {
		for i := range d.BookingItems {
			if d.BookingItems[i].ID != itemID {
				continue
			}
			if patch.Name != nil {
				d.BookingItems[i].Name = *patch.Name
			}
			if patch.Color != nil {
				d.BookingItems[i].Color = *patch.Color
			}
			if patch.Size != nil {
				d.BookingItems[i].Size = *patch.Size
			}
			if patch.Description != nil {
				d.BookingItems[i].Description = *patch.Description
			}
			return nil
		}
		return NewNotFoundError(fmt.Sprintf("item %s not found", itemID))
	})
}

// RemoveItem deletes the item with the given ID; absent IDs are a no-op.
func (s *DefaultDraftService) RemoveItem(ctx context.Context, sessionID, itemID string) (*models.BookingDraft, error) {
	return s.mutate(ctx, sessionID, func(d *models.BookingDraft) error {
		for i := range d.BookingItems {
			if d.BookingItems[i].ID == itemID {
				d.BookingItems = append(d.BookingItems[:i], d.BookingItems[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

// SetDetails merges partial scheduling, pickup and contact fields.
func (s *DefaultDraftService) SetDetails(ctx context.Context, sessionID string, patch DetailsPatch) (*models.BookingDraft, error) {
	return s.mutate(ctx, sessionID, func(d *models.BookingDraft) error {
		if patch.PickupAddress != nil {
			d.PickupAddress = *patch.PickupAddress
		}
		if patch.DeliveryAddress != nil {
			d.DeliveryAddress = *patch.DeliveryAddress
		}
		if patch.DateRequested != nil {
			d.DateRequested = *patch.DateRequested
		}
		if patch.TimeWindow != nil {
			d.TimeWindow = *patch.TimeWindow
		}
		if patch.PickupLocationType != nil {
			d.PickupLocationType = *patch.PickupLocationType
		}
		if patch.StoreName != nil {
			d.StoreName = *patch.StoreName
		}
		if patch.OrderPaymentStatus != nil {
			d.OrderPaymentStatus = *patch.OrderPaymentStatus
		}
		if patch.OrderConfirmationName != nil {
			d.OrderConfirmationName = *patch.OrderConfirmationName
		}
		if patch.OrderReceiptNumber != nil {
			d.OrderReceiptNumber = *patch.OrderReceiptNumber
		}
		if patch.RecipientName != nil {
			d.RecipientName = *patch.RecipientName
		}
		if patch.CustomerEmail != nil {
			d.CustomerEmail = *patch.CustomerEmail
		}
		if patch.CustomerPhone != nil {
			d.CustomerPhone = *patch.CustomerPhone
		}
		return nil
	})
}

// Reset restores the session's draft to defaults, keeping the session ID.
func (s *DefaultDraftService) Reset(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	draft := models.NewBookingDraft(sessionID)
	if err := s.Store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Discard drops the session's draft entirely.
func (s *DefaultDraftService) Discard(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// mutate loads the draft, applies fn, recomputes the total and saves. The
// recompute happens before the save so callers never read a stale total.
func (s *DefaultDraftService) mutate(ctx context.Context, sessionID string, fn func(*models.BookingDraft) error) (*models.BookingDraft, error) {
	draft, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		return nil, err
	}
	draft.TotalPrice = s.Engine.TotalOf(draft)
	if err := s.Store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func removeAddOn(d *models.BookingDraft, addOnID string) {
	filtered := d.SelectedAddOns[:0]
	for _, sa := range d.SelectedAddOns {
		if sa.ID != addOnID {
			filtered = append(filtered, sa)
		}
	}
	d.SelectedAddOns = filtered
}

func clampQuantity(q, max int) int {
	if q < 1 {
		q = 1
	}
	if max > 0 && q > max {
		q = max
	}
	return q
}
