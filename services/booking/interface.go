package booking

import (
	"context"

	"quickdrop/models"
	"quickdrop/services/catalog"
	"quickdrop/services/pricing"
)

// DraftService manages the single active booking draft for a session. Every
// mutation recomputes the cached total before the draft is saved, so a read
// that follows a mutation never observes a stale total.
type DraftService interface {
	CreateDraft(ctx context.Context) (*models.BookingDraft, error)
	GetDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	SetServiceType(ctx context.Context, sessionID string, t models.ServiceType) (*models.BookingDraft, error)
	SelectPackage(ctx context.Context, sessionID, packageName string) (*models.BookingDraft, error)
	ToggleAddOn(ctx context.Context, sessionID, addOnID string, checked bool, value models.AddOnValue) (*models.BookingDraft, error)
	AddItem(ctx context.Context, sessionID string, item models.BookingItem) (*models.BookingDraft, error)
	UpdateItem(ctx context.Context, sessionID, itemID string, patch ItemPatch) (*models.BookingDraft, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*models.BookingDraft, error)
	SetDetails(ctx context.Context, sessionID string, patch DetailsPatch) (*models.BookingDraft, error)
	Reset(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	Discard(ctx context.Context, sessionID string) error
}

// ItemPatch merges partial item fields; nil fields are left untouched.
type ItemPatch struct {
	Name        *string `json:"name,omitempty"`
	Color       *string `json:"color,omitempty"`
	Size        *string `json:"size,omitempty"`
	Description *string `json:"description,omitempty"`
}

// DetailsPatch merges partial scheduling, pickup and contact fields; nil
// fields are left untouched.
type DetailsPatch struct {
	PickupAddress         *string                    `json:"pickupAddress,omitempty"`
	DeliveryAddress       *string                    `json:"deliveryAddress,omitempty"`
	DateRequested         *string                    `json:"dateRequested,omitempty"`
	TimeWindow            *string                    `json:"timeWindow,omitempty"`
	PickupLocationType    *models.PickupLocationType `json:"pickupLocationType,omitempty"`
	StoreName             *string                    `json:"storeName,omitempty"`
	OrderPaymentStatus    *models.OrderPaymentStatus `json:"orderPaymentStatus,omitempty"`
	OrderConfirmationName *string                    `json:"orderConfirmationName,omitempty"`
	OrderReceiptNumber    *string                    `json:"orderReceiptNumber,omitempty"`
	RecipientName         *string                    `json:"recipientName,omitempty"`
	CustomerEmail         *string                    `json:"customerEmail,omitempty"`
	CustomerPhone         *string                    `json:"customerPhone,omitempty"`
}

// DefaultDraftService implements DraftService.
type DefaultDraftService struct {
	Store   DraftStore
	Catalog *catalog.Catalog
	Engine  *pricing.Engine
}
